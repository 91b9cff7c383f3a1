package storage

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/aTrapDeer/portfolio-backend/internal/models"
)

const (
	kindProfile     = "profile"
	kindProjects    = "projects"
	kindSkills      = "skills"
	kindExperiences = "experiences"
)

// CachedStorage serves the public reads (profile, projects, skills,
// experiences) from a go-cache and drops a kind's entries whenever it is
// written. Users and messages go straight to the wrapped store.
type CachedStorage struct {
	Storage

	cache *cache.Cache

	mu  sync.Mutex
	gen map[string]uint64
}

func NewCachedStorage(inner Storage, ttl, cleanupInterval time.Duration) *CachedStorage {
	return &CachedStorage{
		Storage: inner,
		cache:   cache.New(ttl, cleanupInterval),
		gen:     map[string]uint64{},
	}
}

func (c *CachedStorage) generation(kind string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen[kind]
}

func (c *CachedStorage) invalidate(kind string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen[kind]++
	prefix := kind + ":"
	for key := range c.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			c.cache.Delete(key)
		}
	}
}

// getCachedData is a read-through lookup. A value fetched while the kind was
// being written is returned but not stored.
func getCachedData[T any](c *CachedStorage, kind, key string, clone func(T) T, fetch func() (T, bool, error)) (T, bool, error) {
	key = kind + ":" + key
	if data, found := c.cache.Get(key); found {
		return clone(data.(T)), true, nil
	}

	gen := c.generation(kind)
	data, ok, err := fetch()
	if err != nil || !ok {
		return data, ok, err
	}

	c.mu.Lock()
	if c.gen[kind] == gen {
		c.cache.Set(key, clone(data), cache.DefaultExpiration)
	}
	c.mu.Unlock()
	return data, true, nil
}

func list[T any](fetch func() ([]T, error)) func() ([]T, bool, error) {
	return func() ([]T, bool, error) {
		items, err := fetch()
		return items, err == nil, err
	}
}

func cloneSlice[T any](clone func(T) T) func([]T) []T {
	return func(in []T) []T {
		out := make([]T, len(in))
		for i, v := range in {
			out[i] = clone(v)
		}
		return out
	}
}

func same[T any](v T) T { return v }

func deref[T any](get func() (*T, bool, error)) func() (T, bool, error) {
	return func() (T, bool, error) {
		v, ok, err := get()
		if err != nil || !ok {
			var zero T
			return zero, false, err
		}
		return *v, true, nil
	}
}

func ptr[T any](v T, ok bool, err error) (*T, bool, error) {
	if err != nil || !ok {
		return nil, false, err
	}
	return &v, true, nil
}

// Profile

func (c *CachedStorage) GetProfile(ctx context.Context) (*models.Profile, bool, error) {
	p, ok, err := getCachedData(c, kindProfile, "current", models.Profile.Clone,
		deref(func() (*models.Profile, bool, error) { return c.Storage.GetProfile(ctx) }))
	return ptr(p, ok, err)
}

func (c *CachedStorage) CreateProfile(ctx context.Context, in models.InsertProfile) (*models.Profile, error) {
	p, err := c.Storage.CreateProfile(ctx, in)
	if err == nil {
		c.invalidate(kindProfile)
	}
	return p, err
}

func (c *CachedStorage) UpdateProfile(ctx context.Context, id int, patch models.ProfilePatch) (*models.Profile, bool, error) {
	p, ok, err := c.Storage.UpdateProfile(ctx, id, patch)
	if err == nil && ok {
		c.invalidate(kindProfile)
	}
	return p, ok, err
}

// Projects

func (c *CachedStorage) GetProjects(ctx context.Context) ([]models.Project, error) {
	items, _, err := getCachedData(c, kindProjects, "all", cloneSlice(models.Project.Clone),
		list(func() ([]models.Project, error) { return c.Storage.GetProjects(ctx) }))
	return items, err
}

func (c *CachedStorage) GetFeaturedProjects(ctx context.Context) ([]models.Project, error) {
	items, _, err := getCachedData(c, kindProjects, "featured", cloneSlice(models.Project.Clone),
		list(func() ([]models.Project, error) { return c.Storage.GetFeaturedProjects(ctx) }))
	return items, err
}

func (c *CachedStorage) GetProject(ctx context.Context, id int) (*models.Project, bool, error) {
	p, ok, err := getCachedData(c, kindProjects, "id:"+strconv.Itoa(id), models.Project.Clone,
		deref(func() (*models.Project, bool, error) { return c.Storage.GetProject(ctx, id) }))
	return ptr(p, ok, err)
}

func (c *CachedStorage) CreateProject(ctx context.Context, in models.InsertProject) (*models.Project, error) {
	p, err := c.Storage.CreateProject(ctx, in)
	if err == nil {
		c.invalidate(kindProjects)
	}
	return p, err
}

func (c *CachedStorage) UpdateProject(ctx context.Context, id int, patch models.ProjectPatch) (*models.Project, bool, error) {
	p, ok, err := c.Storage.UpdateProject(ctx, id, patch)
	if err == nil && ok {
		c.invalidate(kindProjects)
	}
	return p, ok, err
}

func (c *CachedStorage) DeleteProject(ctx context.Context, id int) (bool, error) {
	ok, err := c.Storage.DeleteProject(ctx, id)
	if err == nil && ok {
		c.invalidate(kindProjects)
	}
	return ok, err
}

// Skills

func (c *CachedStorage) GetSkills(ctx context.Context) ([]models.Skill, error) {
	items, _, err := getCachedData(c, kindSkills, "all", cloneSlice(same[models.Skill]),
		list(func() ([]models.Skill, error) { return c.Storage.GetSkills(ctx) }))
	return items, err
}

func (c *CachedStorage) GetSkillsByCategory(ctx context.Context, category string) ([]models.Skill, error) {
	items, _, err := getCachedData(c, kindSkills, "category:"+category, cloneSlice(same[models.Skill]),
		list(func() ([]models.Skill, error) { return c.Storage.GetSkillsByCategory(ctx, category) }))
	return items, err
}

func (c *CachedStorage) CreateSkill(ctx context.Context, in models.InsertSkill) (*models.Skill, error) {
	s, err := c.Storage.CreateSkill(ctx, in)
	if err == nil {
		c.invalidate(kindSkills)
	}
	return s, err
}

func (c *CachedStorage) UpdateSkill(ctx context.Context, id int, patch models.SkillPatch) (*models.Skill, bool, error) {
	s, ok, err := c.Storage.UpdateSkill(ctx, id, patch)
	if err == nil && ok {
		c.invalidate(kindSkills)
	}
	return s, ok, err
}

func (c *CachedStorage) DeleteSkill(ctx context.Context, id int) (bool, error) {
	ok, err := c.Storage.DeleteSkill(ctx, id)
	if err == nil && ok {
		c.invalidate(kindSkills)
	}
	return ok, err
}

// Experiences

func (c *CachedStorage) GetExperiences(ctx context.Context) ([]models.Experience, error) {
	items, _, err := getCachedData(c, kindExperiences, "all", cloneSlice(models.Experience.Clone),
		list(func() ([]models.Experience, error) { return c.Storage.GetExperiences(ctx) }))
	return items, err
}

func (c *CachedStorage) CreateExperience(ctx context.Context, in models.InsertExperience) (*models.Experience, error) {
	e, err := c.Storage.CreateExperience(ctx, in)
	if err == nil {
		c.invalidate(kindExperiences)
	}
	return e, err
}

func (c *CachedStorage) UpdateExperience(ctx context.Context, id int, patch models.ExperiencePatch) (*models.Experience, bool, error) {
	e, ok, err := c.Storage.UpdateExperience(ctx, id, patch)
	if err == nil && ok {
		c.invalidate(kindExperiences)
	}
	return e, ok, err
}

func (c *CachedStorage) DeleteExperience(ctx context.Context, id int) (bool, error) {
	ok, err := c.Storage.DeleteExperience(ctx, id)
	if err == nil && ok {
		c.invalidate(kindExperiences)
	}
	return ok, err
}
