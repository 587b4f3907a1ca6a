package models

import (
	"time"
)

// Role values for workspace access.
const (
	RoleAdmin        = "admin"
	RoleCollaborator = "collaborator"
)

type User struct {
	UserID    int     `gorm:"primaryKey;column:user_id" json:"user_id"`
	FirstName string  `gorm:"column:first_name" json:"first_name"`
	LastName  string  `gorm:"column:last_name" json:"last_name"`
	Email     string  `gorm:"column:email;unique" json:"email"`
	Password  string  `gorm:"column:password" json:"-"`
	Role      string  `gorm:"column:role" json:"role"`
	AvatarURL *string `gorm:"column:avatar_url" json:"avatar_url,omitempty"`

	// AccountID is the workspace owner's user_id. Owners point at themselves,
	// collaborators point at the account that invited them.
	AccountID int `gorm:"column:account_id" json:"account_id"`

	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// FullName returns "firstName lastName" for display and search.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (User) TableName() string {
	return "users"
}

type UserPreferences struct {
	PreferenceID int        `gorm:"primaryKey;column:preference_id" json:"preference_id"`
	UserID       int        `gorm:"column:user_id;unique" json:"user_id"`
	Currency     string     `gorm:"column:currency" json:"currency"`
	Language     string     `gorm:"column:language" json:"language"`
	Theme        string     `gorm:"column:theme" json:"theme"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`
}

func (UserPreferences) TableName() string {
	return "user_preferences"
}
