package models

import "time"

// Project statuses.
const (
	ProjectStatusPlanning   = "planning"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusOnHold     = "on_hold"
	ProjectStatusCompleted  = "completed"
)

// Project represents the projects table
type Project struct {
	ProjectID   int        `gorm:"primaryKey;column:project_id" json:"project_id"`
	UserID      int        `gorm:"column:user_id" json:"user_id"`
	Name        string     `gorm:"column:name" json:"name"`
	Description *string    `gorm:"column:description" json:"description"`
	Status      string     `gorm:"column:status" json:"status"`
	Budget      *float64   `gorm:"column:budget" json:"budget"`
	StartDate   *time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate     *time.Time `gorm:"column:end_date" json:"end_date"`
	Address     *string    `gorm:"column:address" json:"address"`
	ClientName  *string    `gorm:"column:client_name" json:"client_name"`
	ClientEmail *string    `gorm:"column:client_email" json:"client_email"`
	ClientPhone *string    `gorm:"column:client_phone" json:"client_phone"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`

	Tasks []Task `gorm:"foreignKey:ProjectID;references:ProjectID" json:"tasks,omitempty"`
}

// TableName overrides the table name for Project
func (Project) TableName() string {
	return "projects"
}

// ValidProjectStatus reports whether status is one of the four fixed values.
func ValidProjectStatus(status string) bool {
	switch status {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusOnHold, ProjectStatusCompleted:
		return true
	}
	return false
}
