package models

import "time"

// Task statuses and priorities.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"

	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

// Task represents the tasks table
type Task struct {
	TaskID         int        `gorm:"primaryKey;column:task_id" json:"task_id"`
	UserID         int        `gorm:"column:user_id" json:"user_id"`
	ProjectID      int        `gorm:"column:project_id" json:"project_id"`
	AssignedTo     *int       `gorm:"column:assigned_to" json:"assigned_to"`
	Title          string     `gorm:"column:title" json:"title"`
	Description    *string    `gorm:"column:description" json:"description"`
	Status         string     `gorm:"column:status" json:"status"`
	Priority       string     `gorm:"column:priority" json:"priority"`
	DueDate        *time.Time `gorm:"column:due_date" json:"due_date"`
	EstimatedHours *float64   `gorm:"column:estimated_hours" json:"estimated_hours"`
	ActualHours    *float64   `gorm:"column:actual_hours" json:"actual_hours"`
	CreateAt       *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt       *time.Time `gorm:"column:update_at" json:"update_at"`

	Project  Project   `gorm:"foreignKey:ProjectID;references:ProjectID" json:"project,omitempty"`
	Assignee *Employee `gorm:"foreignKey:AssignedTo;references:EmployeeID" json:"assignee,omitempty"`
}

// TableName overrides the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// ValidTaskStatus reports whether status is one of the three fixed values.
func ValidTaskStatus(status string) bool {
	switch status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// ValidTaskPriority reports whether priority is one of the three fixed values.
func ValidTaskPriority(priority string) bool {
	switch priority {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}
