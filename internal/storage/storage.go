// Package storage owns every portfolio record. All implementations share one
// contract:
//
//   - ids come from a single counter shared by all record kinds and are never reused;
//   - single-record reads and updates report a missing id with ok == false and a nil error;
//   - deletes report whether anything was removed and are safe to repeat;
//   - updates merge the patch onto the stored record and never create one;
//   - returned values are copies.
//
// Field values are not validated here; that happens at the request boundary.
package storage

import (
	"context"
	"errors"

	"github.com/aTrapDeer/portfolio-backend/internal/models"
)

var ErrDuplicateUsername = errors.New("username already exists")

type Storage interface {
	GetUser(ctx context.Context, id int) (*models.User, bool, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, bool, error)
	CreateUser(ctx context.Context, in models.InsertUser) (*models.User, error)

	GetProfile(ctx context.Context) (*models.Profile, bool, error)
	CreateProfile(ctx context.Context, in models.InsertProfile) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id int, patch models.ProfilePatch) (*models.Profile, bool, error)

	GetProjects(ctx context.Context) ([]models.Project, error)
	GetFeaturedProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id int) (*models.Project, bool, error)
	CreateProject(ctx context.Context, in models.InsertProject) (*models.Project, error)
	UpdateProject(ctx context.Context, id int, patch models.ProjectPatch) (*models.Project, bool, error)
	DeleteProject(ctx context.Context, id int) (bool, error)

	GetSkills(ctx context.Context) ([]models.Skill, error)
	GetSkillsByCategory(ctx context.Context, category string) ([]models.Skill, error)
	GetSkill(ctx context.Context, id int) (*models.Skill, bool, error)
	CreateSkill(ctx context.Context, in models.InsertSkill) (*models.Skill, error)
	UpdateSkill(ctx context.Context, id int, patch models.SkillPatch) (*models.Skill, bool, error)
	DeleteSkill(ctx context.Context, id int) (bool, error)

	GetExperiences(ctx context.Context) ([]models.Experience, error)
	GetExperience(ctx context.Context, id int) (*models.Experience, bool, error)
	CreateExperience(ctx context.Context, in models.InsertExperience) (*models.Experience, error)
	UpdateExperience(ctx context.Context, id int, patch models.ExperiencePatch) (*models.Experience, bool, error)
	DeleteExperience(ctx context.Context, id int) (bool, error)

	GetMessages(ctx context.Context) ([]models.Message, error)
	GetMessage(ctx context.Context, id int) (*models.Message, bool, error)
	CreateMessage(ctx context.Context, in models.InsertMessage) (*models.Message, error)
	MarkMessageAsRead(ctx context.Context, id int) (bool, error)
	DeleteMessage(ctx context.Context, id int) (bool, error)
	CountUnreadMessages(ctx context.Context) (int, error)

	Close() error
}
