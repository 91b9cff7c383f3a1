package storage

import (
	"context"
	"fmt"

	"github.com/aTrapDeer/portfolio-backend/internal/models"
)

// DefaultProfile is the placeholder profile every fresh store starts with.
func DefaultProfile() models.InsertProfile {
	github := "https://github.com/johndoe"
	linkedin := "https://linkedin.com/in/johndoe"
	twitter := "https://twitter.com/johndoe"
	return models.InsertProfile{
		Name:  "John Doe",
		Title: "Full Stack Developer",
		Bio: "Passionate developer with 5+ years of experience creating innovative web applications " +
			"and solving complex problems with clean, efficient code.",
		AboutText: "I'm a passionate full-stack developer with over 5 years of experience building scalable " +
			"web applications. My journey started with a Computer Science degree, and I've since worked with " +
			"startups and established companies to bring innovative digital solutions to life.",
		AboutText2: "I specialize in modern JavaScript frameworks, cloud architecture, and creating user-centric " +
			"applications that solve real-world problems. When I'm not coding, you'll find me contributing to " +
			"open-source projects or mentoring aspiring developers.",
		Location:   "San Francisco, CA",
		Experience: "5+ Years",
		Education:  "CS Degree",
		Status:     "Available",
		Email:      "john.doe@example.com",
		Phone:      "+1 (555) 123-4567",
		Github:     &github,
		Linkedin:   &linkedin,
		Twitter:    &twitter,
	}
}

// SeedResult reports what Seed had to create.
type SeedResult struct {
	AdminCreated   bool
	ProfileCreated bool
}

// Seed makes sure the admin account and the profile exist. passwordHash must
// already be hashed. Existing records are left alone, so it is safe to run on
// every start against a persistent store.
func Seed(ctx context.Context, s Storage, adminUsername, passwordHash string) (SeedResult, error) {
	var res SeedResult

	_, ok, err := s.GetUserByUsername(ctx, adminUsername)
	if err != nil {
		return res, fmt.Errorf("seed admin: %w", err)
	}
	if !ok {
		if _, err := s.CreateUser(ctx, models.InsertUser{Username: adminUsername, Password: passwordHash}); err != nil {
			return res, fmt.Errorf("seed admin: %w", err)
		}
		res.AdminCreated = true
	}

	_, ok, err = s.GetProfile(ctx)
	if err != nil {
		return res, fmt.Errorf("seed profile: %w", err)
	}
	if !ok {
		if _, err := s.CreateProfile(ctx, DefaultProfile()); err != nil {
			return res, fmt.Errorf("seed profile: %w", err)
		}
		res.ProfileCreated = true
	}

	return res, nil
}
