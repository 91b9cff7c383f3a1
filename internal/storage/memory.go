package storage

import (
	"context"
	"sync"

	"github.com/aTrapDeer/portfolio-backend/internal/models"
)

// MemStorage keeps every record in process memory. State is lost on restart.
type MemStorage struct {
	mu          sync.RWMutex
	users       map[int]models.User
	profiles    map[int]models.Profile
	projects    map[int]models.Project
	skills      map[int]models.Skill
	experiences map[int]models.Experience
	messages    map[int]models.Message
	currentID   int
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:       map[int]models.User{},
		profiles:    map[int]models.Profile{},
		projects:    map[int]models.Project{},
		skills:      map[int]models.Skill{},
		experiences: map[int]models.Experience{},
		messages:    map[int]models.Message{},
	}
}

// nextID must be called with mu held for writing.
func (m *MemStorage) nextID() int {
	m.currentID++
	return m.currentID
}

func (m *MemStorage) Close() error { return nil }

// User methods

func (m *MemStorage) GetUser(_ context.Context, id int) (*models.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, false, nil
	}
	return &u, true, nil
}

func (m *MemStorage) GetUserByUsername(_ context.Context, username string) (*models.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == username {
			return &u, true, nil
		}
	}
	return nil, false, nil
}

func (m *MemStorage) CreateUser(_ context.Context, in models.InsertUser) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == in.Username {
			return nil, ErrDuplicateUsername
		}
	}
	u := models.User{ID: m.nextID(), Username: in.Username, Password: in.Password}
	m.users[u.ID] = u
	return &u, nil
}

// Profile methods

func (m *MemStorage) GetProfile(_ context.Context) (*models.Profile, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	first := 0
	for id := range m.profiles {
		if first == 0 || id < first {
			first = id
		}
	}
	if first == 0 {
		return nil, false, nil
	}
	p := m.profiles[first].Clone()
	return &p, true, nil
}

func (m *MemStorage) CreateProfile(_ context.Context, in models.InsertProfile) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := in.ToProfile()
	p.ID = m.nextID()
	m.profiles[p.ID] = p
	out := p.Clone()
	return &out, nil
}

func (m *MemStorage) UpdateProfile(_ context.Context, id int, patch models.ProfilePatch) (*models.Profile, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.profiles[id]
	if !ok {
		return nil, false, nil
	}
	updated := existing.Clone()
	patch.Apply(&updated)
	m.profiles[id] = updated
	out := updated.Clone()
	return &out, true, nil
}

// Project methods

func (m *MemStorage) GetProjects(_ context.Context) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, p.Clone())
	}
	sortProjects(out)
	return out, nil
}

func (m *MemStorage) GetFeaturedProjects(_ context.Context) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Project{}
	for _, p := range m.projects {
		if isFeatured(p) {
			out = append(out, p.Clone())
		}
	}
	sortProjects(out)
	return out, nil
}

func (m *MemStorage) GetProject(_ context.Context, id int) (*models.Project, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.projects[id]
	if !ok {
		return nil, false, nil
	}
	out := p.Clone()
	return &out, true, nil
}

func (m *MemStorage) CreateProject(_ context.Context, in models.InsertProject) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := in.ToProject()
	p.ID = m.nextID()
	p.CreatedAt = now()
	m.projects[p.ID] = p
	out := p.Clone()
	return &out, nil
}

func (m *MemStorage) UpdateProject(_ context.Context, id int, patch models.ProjectPatch) (*models.Project, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.projects[id]
	if !ok {
		return nil, false, nil
	}
	updated := existing.Clone()
	patch.Apply(&updated)
	m.projects[id] = updated
	out := updated.Clone()
	return &out, true, nil
}

func (m *MemStorage) DeleteProject(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[id]; !ok {
		return false, nil
	}
	delete(m.projects, id)
	return true, nil
}

// Skill methods

func (m *MemStorage) GetSkills(_ context.Context) ([]models.Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Skill, 0, len(m.skills))
	for _, s := range m.skills {
		out = append(out, s)
	}
	sortSkills(out)
	return out, nil
}

func (m *MemStorage) GetSkillsByCategory(_ context.Context, category string) ([]models.Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Skill{}
	for _, s := range m.skills {
		if string(s.Category) == category {
			out = append(out, s)
		}
	}
	sortSkills(out)
	return out, nil
}

func (m *MemStorage) GetSkill(_ context.Context, id int) (*models.Skill, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.skills[id]
	if !ok {
		return nil, false, nil
	}
	return &s, true, nil
}

func (m *MemStorage) CreateSkill(_ context.Context, in models.InsertSkill) (*models.Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := in.ToSkill()
	s.ID = m.nextID()
	m.skills[s.ID] = s
	return &s, nil
}

func (m *MemStorage) UpdateSkill(_ context.Context, id int, patch models.SkillPatch) (*models.Skill, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.skills[id]
	if !ok {
		return nil, false, nil
	}
	patch.Apply(&s)
	m.skills[id] = s
	return &s, true, nil
}

func (m *MemStorage) DeleteSkill(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.skills[id]; !ok {
		return false, nil
	}
	delete(m.skills, id)
	return true, nil
}

// Experience methods

func (m *MemStorage) GetExperiences(_ context.Context) ([]models.Experience, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Experience, 0, len(m.experiences))
	for _, e := range m.experiences {
		out = append(out, e.Clone())
	}
	sortExperiences(out)
	return out, nil
}

func (m *MemStorage) GetExperience(_ context.Context, id int) (*models.Experience, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.experiences[id]
	if !ok {
		return nil, false, nil
	}
	out := e.Clone()
	return &out, true, nil
}

func (m *MemStorage) CreateExperience(_ context.Context, in models.InsertExperience) (*models.Experience, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := in.ToExperience()
	e.ID = m.nextID()
	m.experiences[e.ID] = e
	out := e.Clone()
	return &out, nil
}

func (m *MemStorage) UpdateExperience(_ context.Context, id int, patch models.ExperiencePatch) (*models.Experience, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.experiences[id]
	if !ok {
		return nil, false, nil
	}
	updated := existing.Clone()
	patch.Apply(&updated)
	m.experiences[id] = updated
	out := updated.Clone()
	return &out, true, nil
}

func (m *MemStorage) DeleteExperience(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.experiences[id]; !ok {
		return false, nil
	}
	delete(m.experiences, id)
	return true, nil
}

// Message methods

func (m *MemStorage) GetMessages(_ context.Context) ([]models.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Message, 0, len(m.messages))
	for _, msg := range m.messages {
		out = append(out, msg)
	}
	sortMessages(out)
	return out, nil
}

func (m *MemStorage) GetMessage(_ context.Context, id int) (*models.Message, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msg, ok := m.messages[id]
	if !ok {
		return nil, false, nil
	}
	return &msg, true, nil
}

func (m *MemStorage) CreateMessage(_ context.Context, in models.InsertMessage) (*models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg := in.ToMessage()
	msg.ID = m.nextID()
	msg.Read = false
	msg.CreatedAt = now()
	m.messages[msg.ID] = msg
	return &msg, nil
}

func (m *MemStorage) MarkMessageAsRead(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.messages[id]
	if !ok {
		return false, nil
	}
	msg.Read = true
	m.messages[id] = msg
	return true, nil
}

func (m *MemStorage) DeleteMessage(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.messages[id]; !ok {
		return false, nil
	}
	delete(m.messages, id)
	return true, nil
}

func (m *MemStorage) CountUnreadMessages(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, msg := range m.messages {
		if !msg.Read {
			n++
		}
	}
	return n, nil
}
