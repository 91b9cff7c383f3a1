package models

func (p Profile) Clone() Profile {
	p.Github = clonePtr(p.Github)
	p.Linkedin = clonePtr(p.Linkedin)
	p.Twitter = clonePtr(p.Twitter)
	p.ResumeURL = clonePtr(p.ResumeURL)
	p.ProfileImage = clonePtr(p.ProfileImage)
	return p
}

func (p Project) Clone() Project {
	p.Technologies = p.Technologies.Clone()
	p.LiveURL = clonePtr(p.LiveURL)
	p.GithubURL = clonePtr(p.GithubURL)
	p.Image = clonePtr(p.Image)
	return p
}

func (e Experience) Clone() Experience {
	e.Technologies = e.Technologies.Clone()
	return e
}

// ToProfile copies the payload into a record without an id.
func (in InsertProfile) ToProfile() Profile {
	return Profile{
		Name:         in.Name,
		Title:        in.Title,
		Bio:          in.Bio,
		AboutText:    in.AboutText,
		AboutText2:   in.AboutText2,
		Location:     in.Location,
		Experience:   in.Experience,
		Education:    in.Education,
		Status:       in.Status,
		Email:        in.Email,
		Phone:        in.Phone,
		Github:       clonePtr(in.Github),
		Linkedin:     clonePtr(in.Linkedin),
		Twitter:      clonePtr(in.Twitter),
		ResumeURL:    clonePtr(in.ResumeURL),
		ProfileImage: clonePtr(in.ProfileImage),
	}
}

// ToProject copies the payload into a record; status defaults to draft.
func (in InsertProject) ToProject() Project {
	status := in.Status
	if status == "" {
		status = ProjectDraft
	}
	return Project{
		Title:        in.Title,
		Description:  in.Description,
		Technologies: StringList(in.Technologies).Clone(),
		LiveURL:      clonePtr(in.LiveURL),
		GithubURL:    clonePtr(in.GithubURL),
		Image:        clonePtr(in.Image),
		Status:       status,
		Featured:     in.Featured,
	}
}

func (in InsertSkill) ToSkill() Skill {
	s := Skill{
		Name:     in.Name,
		Category: in.Category,
		Level:    in.Level,
	}
	if in.Percentage != nil {
		s.Percentage = *in.Percentage
	}
	return s
}

func (in InsertExperience) ToExperience() Experience {
	return Experience{
		Title:        in.Title,
		Company:      in.Company,
		Period:       in.Period,
		Description:  in.Description,
		Technologies: StringList(in.Technologies).Clone(),
		Current:      in.Current,
		Order:        in.Order,
	}
}

// ToMessage never carries Read or CreatedAt; storage assigns both.
func (in InsertMessage) ToMessage() Message {
	return Message{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Body:    in.Body,
	}
}
