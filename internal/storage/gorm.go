package storage

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/aTrapDeer/portfolio-backend/internal/models"
)

const sharedSequence = "records"

// idSequence backs the id counter shared by every table. Rows are never
// decremented, so ids survive deletes and restarts without reuse.
type idSequence struct {
	Name  string `gorm:"primaryKey"`
	Value int    `gorm:"not null"`
}

func (idSequence) TableName() string { return "id_sequences" }

// GormStorage persists records in sqlite through gorm.
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage opens (or creates) the sqlite database at path and migrates
// the schema. Pass ":memory:" for a throwaway database.
func NewGormStorage(ctx context.Context, path string) (*GormStorage, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	// sqlite serialises writers anyway; one connection also keeps ":memory:" alive.
	sqlDB.SetMaxOpenConns(1)

	db = db.WithContext(ctx)
	if err := db.AutoMigrate(
		&idSequence{},
		&models.User{},
		&models.Profile{},
		&models.Project{},
		&models.Skill{},
		&models.Experience{},
		&models.Message{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	seq := idSequence{Name: sharedSequence}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seq).Error; err != nil {
		return nil, fmt.Errorf("init id sequence: %w", err)
	}

	return &GormStorage{db: db.WithContext(context.Background())}, nil
}

func (g *GormStorage) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (g *GormStorage) nextID(tx *gorm.DB) (int, error) {
	err := tx.Model(&idSequence{}).
		Where("name = ?", sharedSequence).
		UpdateColumn("value", gorm.Expr("value + ?", 1)).Error
	if err != nil {
		return 0, fmt.Errorf("advance id sequence: %w", err)
	}
	var seq idSequence
	if err := tx.Where("name = ?", sharedSequence).Take(&seq).Error; err != nil {
		return 0, fmt.Errorf("read id sequence: %w", err)
	}
	return seq.Value, nil
}

// insert assigns the next shared id via setID and creates rec in one transaction.
func (g *GormStorage) insert(ctx context.Context, rec any, setID func(int)) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := g.nextID(tx)
		if err != nil {
			return err
		}
		setID(id)
		return tx.Create(rec).Error
	})
}

// find loads the row with the given primary key into dst.
func (g *GormStorage) find(ctx context.Context, dst any, id int) (bool, error) {
	res := g.db.WithContext(ctx).Limit(1).Find(dst, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// update loads dst, applies the patch and saves it back in one transaction.
func (g *GormStorage) update(ctx context.Context, dst any, id int, apply func()) (bool, error) {
	found := false
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Limit(1).Find(dst, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true
		apply()
		return tx.Save(dst).Error
	})
	return found, err
}

func (g *GormStorage) remove(ctx context.Context, model any, id int) (bool, error) {
	res := g.db.WithContext(ctx).Delete(model, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// User methods

func (g *GormStorage) GetUser(ctx context.Context, id int) (*models.User, bool, error) {
	var u models.User
	ok, err := g.find(ctx, &u, id)
	if err != nil || !ok {
		return nil, false, wrap(err, "get user %d", id)
	}
	return &u, true, nil
}

func (g *GormStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, bool, error) {
	var u models.User
	res := g.db.WithContext(ctx).Where("username = ?", username).Limit(1).Find(&u)
	if res.Error != nil {
		return nil, false, fmt.Errorf("get user %q: %w", username, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}
	return &u, true, nil
}

func (g *GormStorage) CreateUser(ctx context.Context, in models.InsertUser) (*models.User, error) {
	u := models.User{Username: in.Username, Password: in.Password}
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.User{}).Where("username = ?", in.Username).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicateUsername
		}
		id, err := g.nextID(tx)
		if err != nil {
			return err
		}
		u.ID = id
		return tx.Create(&u).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

// Profile methods

func (g *GormStorage) GetProfile(ctx context.Context) (*models.Profile, bool, error) {
	var p models.Profile
	res := g.db.WithContext(ctx).Order("id").Limit(1).Find(&p)
	if res.Error != nil {
		return nil, false, fmt.Errorf("get profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}
	return &p, true, nil
}

func (g *GormStorage) CreateProfile(ctx context.Context, in models.InsertProfile) (*models.Profile, error) {
	p := in.ToProfile()
	if err := g.insert(ctx, &p, func(id int) { p.ID = id }); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return &p, nil
}

func (g *GormStorage) UpdateProfile(ctx context.Context, id int, patch models.ProfilePatch) (*models.Profile, bool, error) {
	var p models.Profile
	ok, err := g.update(ctx, &p, id, func() { patch.Apply(&p) })
	if err != nil || !ok {
		return nil, false, wrap(err, "update profile %d", id)
	}
	return &p, true, nil
}

// Project methods

func (g *GormStorage) GetProjects(ctx context.Context) ([]models.Project, error) {
	out := []models.Project{}
	if err := g.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	sortProjects(out)
	return out, nil
}

func (g *GormStorage) GetFeaturedProjects(ctx context.Context) ([]models.Project, error) {
	out := []models.Project{}
	err := g.db.WithContext(ctx).
		Where("featured = ? AND status = ?", true, models.ProjectPublished).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list featured projects: %w", err)
	}
	sortProjects(out)
	return out, nil
}

func (g *GormStorage) GetProject(ctx context.Context, id int) (*models.Project, bool, error) {
	var p models.Project
	ok, err := g.find(ctx, &p, id)
	if err != nil || !ok {
		return nil, false, wrap(err, "get project %d", id)
	}
	return &p, true, nil
}

func (g *GormStorage) CreateProject(ctx context.Context, in models.InsertProject) (*models.Project, error) {
	p := in.ToProject()
	p.CreatedAt = now()
	if err := g.insert(ctx, &p, func(id int) { p.ID = id }); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &p, nil
}

func (g *GormStorage) UpdateProject(ctx context.Context, id int, patch models.ProjectPatch) (*models.Project, bool, error) {
	var p models.Project
	ok, err := g.update(ctx, &p, id, func() { patch.Apply(&p) })
	if err != nil || !ok {
		return nil, false, wrap(err, "update project %d", id)
	}
	return &p, true, nil
}

func (g *GormStorage) DeleteProject(ctx context.Context, id int) (bool, error) {
	ok, err := g.remove(ctx, &models.Project{}, id)
	return ok, wrap(err, "delete project %d", id)
}

// Skill methods

func (g *GormStorage) GetSkills(ctx context.Context) ([]models.Skill, error) {
	out := []models.Skill{}
	if err := g.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return out, nil
}

func (g *GormStorage) GetSkillsByCategory(ctx context.Context, category string) ([]models.Skill, error) {
	out := []models.Skill{}
	if err := g.db.WithContext(ctx).Where("category = ?", category).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list skills in %q: %w", category, err)
	}
	return out, nil
}

func (g *GormStorage) GetSkill(ctx context.Context, id int) (*models.Skill, bool, error) {
	var s models.Skill
	ok, err := g.find(ctx, &s, id)
	if err != nil || !ok {
		return nil, false, wrap(err, "get skill %d", id)
	}
	return &s, true, nil
}

func (g *GormStorage) CreateSkill(ctx context.Context, in models.InsertSkill) (*models.Skill, error) {
	s := in.ToSkill()
	if err := g.insert(ctx, &s, func(id int) { s.ID = id }); err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	return &s, nil
}

func (g *GormStorage) UpdateSkill(ctx context.Context, id int, patch models.SkillPatch) (*models.Skill, bool, error) {
	var s models.Skill
	ok, err := g.update(ctx, &s, id, func() { patch.Apply(&s) })
	if err != nil || !ok {
		return nil, false, wrap(err, "update skill %d", id)
	}
	return &s, true, nil
}

func (g *GormStorage) DeleteSkill(ctx context.Context, id int) (bool, error) {
	ok, err := g.remove(ctx, &models.Skill{}, id)
	return ok, wrap(err, "delete skill %d", id)
}

// Experience methods

func (g *GormStorage) GetExperiences(ctx context.Context) ([]models.Experience, error) {
	out := []models.Experience{}
	if err := g.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	sortExperiences(out)
	return out, nil
}

func (g *GormStorage) GetExperience(ctx context.Context, id int) (*models.Experience, bool, error) {
	var e models.Experience
	ok, err := g.find(ctx, &e, id)
	if err != nil || !ok {
		return nil, false, wrap(err, "get experience %d", id)
	}
	return &e, true, nil
}

func (g *GormStorage) CreateExperience(ctx context.Context, in models.InsertExperience) (*models.Experience, error) {
	e := in.ToExperience()
	if err := g.insert(ctx, &e, func(id int) { e.ID = id }); err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}
	return &e, nil
}

func (g *GormStorage) UpdateExperience(ctx context.Context, id int, patch models.ExperiencePatch) (*models.Experience, bool, error) {
	var e models.Experience
	ok, err := g.update(ctx, &e, id, func() { patch.Apply(&e) })
	if err != nil || !ok {
		return nil, false, wrap(err, "update experience %d", id)
	}
	return &e, true, nil
}

func (g *GormStorage) DeleteExperience(ctx context.Context, id int) (bool, error) {
	ok, err := g.remove(ctx, &models.Experience{}, id)
	return ok, wrap(err, "delete experience %d", id)
}

// Message methods

func (g *GormStorage) GetMessages(ctx context.Context) ([]models.Message, error) {
	out := []models.Message{}
	if err := g.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	sortMessages(out)
	return out, nil
}

func (g *GormStorage) GetMessage(ctx context.Context, id int) (*models.Message, bool, error) {
	var m models.Message
	ok, err := g.find(ctx, &m, id)
	if err != nil || !ok {
		return nil, false, wrap(err, "get message %d", id)
	}
	return &m, true, nil
}

func (g *GormStorage) CreateMessage(ctx context.Context, in models.InsertMessage) (*models.Message, error) {
	m := in.ToMessage()
	m.Read = false
	m.CreatedAt = now()
	if err := g.insert(ctx, &m, func(id int) { m.ID = id }); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return &m, nil
}

func (g *GormStorage) MarkMessageAsRead(ctx context.Context, id int) (bool, error) {
	res := g.db.WithContext(ctx).Model(&models.Message{}).Where("id = ?", id).Update("read", true)
	if res.Error != nil {
		return false, fmt.Errorf("mark message %d read: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (g *GormStorage) DeleteMessage(ctx context.Context, id int) (bool, error) {
	ok, err := g.remove(ctx, &models.Message{}, id)
	return ok, wrap(err, "delete message %d", id)
}

func (g *GormStorage) CountUnreadMessages(ctx context.Context) (int, error) {
	var n int64
	if err := g.db.WithContext(ctx).Model(&models.Message{}).Where("read = ?", false).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return int(n), nil
}

// wrap annotates err with context; nil stays nil.
func wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
