// Package models holds the portfolio records, their insert payloads and the
// partial-update patches applied to them.
package models

import "time"

type User struct {
	ID       int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash
}

type InsertUser struct {
	Username string
	Password string
}

// Profile is the singleton "about me" record shown on the landing page.
type Profile struct {
	ID           int     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name         string  `json:"name" gorm:"not null"`
	Title        string  `json:"title" gorm:"not null"`
	Bio          string  `json:"bio" gorm:"not null"`
	AboutText    string  `json:"aboutText" gorm:"not null"`
	AboutText2   string  `json:"aboutText2" gorm:"column:about_text_2;not null"`
	Location     string  `json:"location" gorm:"not null"`
	Experience   string  `json:"experience" gorm:"not null"`
	Education    string  `json:"education" gorm:"not null"`
	Status       string  `json:"status" gorm:"not null"`
	Email        string  `json:"email" gorm:"not null"`
	Phone        string  `json:"phone" gorm:"not null"`
	Github       *string `json:"github"`
	Linkedin     *string `json:"linkedin"`
	Twitter      *string `json:"twitter"`
	ResumeURL    *string `json:"resumeUrl" gorm:"column:resume_url"`
	ProfileImage *string `json:"profileImage"`
}

func (Profile) TableName() string { return "profile" }

type InsertProfile struct {
	Name         string  `json:"name" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Bio          string  `json:"bio" validate:"required"`
	AboutText    string  `json:"aboutText" validate:"required"`
	AboutText2   string  `json:"aboutText2" validate:"required"`
	Location     string  `json:"location" validate:"required"`
	Experience   string  `json:"experience" validate:"required"`
	Education    string  `json:"education" validate:"required"`
	Status       string  `json:"status" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        string  `json:"phone" validate:"required"`
	Github       *string `json:"github"`
	Linkedin     *string `json:"linkedin"`
	Twitter      *string `json:"twitter"`
	ResumeURL    *string `json:"resumeUrl"`
	ProfileImage *string `json:"profileImage"`
}

type Project struct {
	ID           int           `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Title        string        `json:"title" gorm:"not null"`
	Description  string        `json:"description" gorm:"not null"`
	Technologies StringList    `json:"technologies" gorm:"type:text;not null"`
	LiveURL      *string       `json:"liveUrl" gorm:"column:live_url"`
	GithubURL    *string       `json:"githubUrl" gorm:"column:github_url"`
	Image        *string       `json:"image"`
	Status       ProjectStatus `json:"status" gorm:"not null"`
	Featured     bool          `json:"featured" gorm:"not null"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type InsertProject struct {
	Title        string        `json:"title" validate:"required"`
	Description  string        `json:"description" validate:"required"`
	Technologies []string      `json:"technologies" validate:"required,dive,required"`
	LiveURL      *string       `json:"liveUrl"`
	GithubURL    *string       `json:"githubUrl"`
	Image        *string       `json:"image"`
	Status       ProjectStatus `json:"status" validate:"omitempty,enum"`
	Featured     bool          `json:"featured"`
}

type Skill struct {
	ID         int           `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name       string        `json:"name" gorm:"not null"`
	Category   SkillCategory `json:"category" gorm:"not null;index"`
	Level      SkillLevel    `json:"level" gorm:"not null"`
	Percentage int           `json:"percentage" gorm:"not null"`
}

type InsertSkill struct {
	Name       string        `json:"name" validate:"required"`
	Category   SkillCategory `json:"category" validate:"required,enum"`
	Level      SkillLevel    `json:"level" validate:"required,enum"`
	Percentage *int          `json:"percentage" validate:"required,min=0,max=100"`
}

type Experience struct {
	ID           int        `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Title        string     `json:"title" gorm:"not null"`
	Company      string     `json:"company" gorm:"not null"`
	Period       string     `json:"period" gorm:"not null"` // free text, e.g. "2021 - Present"
	Description  string     `json:"description" gorm:"not null"`
	Technologies StringList `json:"technologies" gorm:"type:text;not null"`
	Current      bool       `json:"current" gorm:"not null"`
	Order        int        `json:"order" gorm:"column:sort_order;not null"`
}

type InsertExperience struct {
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Period       string   `json:"period" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies" validate:"required,dive,required"`
	Current      bool     `json:"current"`
	Order        int      `json:"order" validate:"min=0"`
}

// Message is a contact-form submission. Read and CreatedAt are owned by storage.
type Message struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject" gorm:"not null"`
	Body      string    `json:"message" gorm:"column:message;not null"`
	Read      bool      `json:"read" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt"`
}

type InsertMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"message" validate:"required"`
}
