package models

import "time"

// Employee represents the employees table
type Employee struct {
	EmployeeID int        `gorm:"primaryKey;column:employee_id" json:"employee_id"`
	UserID     int        `gorm:"column:user_id" json:"user_id"`
	FirstName  string     `gorm:"column:first_name" json:"first_name"`
	LastName   string     `gorm:"column:last_name" json:"last_name"`
	Position   *string    `gorm:"column:position" json:"position"`
	Email      *string    `gorm:"column:email" json:"email"`
	Phone      *string    `gorm:"column:phone" json:"phone"`
	HourlyRate float64    `gorm:"column:hourly_rate" json:"hourly_rate"`
	HireDate   *time.Time `gorm:"column:hire_date" json:"hire_date"`
	IsActive   bool       `gorm:"column:is_active" json:"is_active"`
	AvatarURL  *string    `gorm:"column:avatar_url" json:"avatar_url,omitempty"`
	CreateAt   *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt   *time.Time `gorm:"column:update_at" json:"update_at"`
}

// FullName returns "firstName lastName" for display and search.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// TableName overrides the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
