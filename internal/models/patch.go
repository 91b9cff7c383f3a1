package models

// Patches carry the fields of a partial update. A nil pointer (or an unset
// Nullable) leaves the stored value untouched.

type ProfilePatch struct {
	Name         *string          `json:"name" validate:"omitnil,min=1"`
	Title        *string          `json:"title" validate:"omitnil,min=1"`
	Bio          *string          `json:"bio" validate:"omitnil,min=1"`
	AboutText    *string          `json:"aboutText" validate:"omitnil,min=1"`
	AboutText2   *string          `json:"aboutText2" validate:"omitnil,min=1"`
	Location     *string          `json:"location" validate:"omitnil,min=1"`
	Experience   *string          `json:"experience" validate:"omitnil,min=1"`
	Education    *string          `json:"education" validate:"omitnil,min=1"`
	Status       *string          `json:"status" validate:"omitnil,min=1"`
	Email        *string          `json:"email" validate:"omitnil,email"`
	Phone        *string          `json:"phone" validate:"omitnil,min=1"`
	Github       Nullable[string] `json:"github"`
	Linkedin     Nullable[string] `json:"linkedin"`
	Twitter      Nullable[string] `json:"twitter"`
	ResumeURL    Nullable[string] `json:"resumeUrl"`
	ProfileImage Nullable[string] `json:"profileImage"`
}

func (p ProfilePatch) Apply(dst *Profile) {
	setIf(&dst.Name, p.Name)
	setIf(&dst.Title, p.Title)
	setIf(&dst.Bio, p.Bio)
	setIf(&dst.AboutText, p.AboutText)
	setIf(&dst.AboutText2, p.AboutText2)
	setIf(&dst.Location, p.Location)
	setIf(&dst.Experience, p.Experience)
	setIf(&dst.Education, p.Education)
	setIf(&dst.Status, p.Status)
	setIf(&dst.Email, p.Email)
	setIf(&dst.Phone, p.Phone)
	p.Github.apply(&dst.Github)
	p.Linkedin.apply(&dst.Linkedin)
	p.Twitter.apply(&dst.Twitter)
	p.ResumeURL.apply(&dst.ResumeURL)
	p.ProfileImage.apply(&dst.ProfileImage)
}

type ProjectPatch struct {
	Title        *string          `json:"title" validate:"omitnil,min=1"`
	Description  *string          `json:"description" validate:"omitnil,min=1"`
	Technologies *[]string        `json:"technologies" validate:"omitnil,dive,required"`
	LiveURL      Nullable[string] `json:"liveUrl"`
	GithubURL    Nullable[string] `json:"githubUrl"`
	Image        Nullable[string] `json:"image"`
	Status       *ProjectStatus   `json:"status" validate:"omitnil,enum"`
	Featured     *bool            `json:"featured"`
}

func (p ProjectPatch) Apply(dst *Project) {
	setIf(&dst.Title, p.Title)
	setIf(&dst.Description, p.Description)
	if p.Technologies != nil {
		dst.Technologies = StringList(*p.Technologies).Clone()
	}
	p.LiveURL.apply(&dst.LiveURL)
	p.GithubURL.apply(&dst.GithubURL)
	p.Image.apply(&dst.Image)
	setIf(&dst.Status, p.Status)
	setIf(&dst.Featured, p.Featured)
}

type SkillPatch struct {
	Name       *string        `json:"name" validate:"omitnil,min=1"`
	Category   *SkillCategory `json:"category" validate:"omitnil,enum"`
	Level      *SkillLevel    `json:"level" validate:"omitnil,enum"`
	Percentage *int           `json:"percentage" validate:"omitnil,min=0,max=100"`
}

func (p SkillPatch) Apply(dst *Skill) {
	setIf(&dst.Name, p.Name)
	setIf(&dst.Category, p.Category)
	setIf(&dst.Level, p.Level)
	setIf(&dst.Percentage, p.Percentage)
}

type ExperiencePatch struct {
	Title        *string   `json:"title" validate:"omitnil,min=1"`
	Company      *string   `json:"company" validate:"omitnil,min=1"`
	Period       *string   `json:"period" validate:"omitnil,min=1"`
	Description  *string   `json:"description" validate:"omitnil,min=1"`
	Technologies *[]string `json:"technologies" validate:"omitnil,dive,required"`
	Current      *bool     `json:"current"`
	Order        *int      `json:"order" validate:"omitnil,min=0"`
}

func (p ExperiencePatch) Apply(dst *Experience) {
	setIf(&dst.Title, p.Title)
	setIf(&dst.Company, p.Company)
	setIf(&dst.Period, p.Period)
	setIf(&dst.Description, p.Description)
	if p.Technologies != nil {
		dst.Technologies = StringList(*p.Technologies).Clone()
	}
	setIf(&dst.Current, p.Current)
	setIf(&dst.Order, p.Order)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
