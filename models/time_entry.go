package models

import "time"

// TimeEntry represents the time_entries table
type TimeEntry struct {
	TimeEntryID int        `gorm:"primaryKey;column:time_entry_id" json:"time_entry_id"`
	UserID      int        `gorm:"column:user_id" json:"user_id"`
	ProjectID   int        `gorm:"column:project_id" json:"project_id"`
	EmployeeID  int        `gorm:"column:employee_id" json:"employee_id"`
	StartTime   time.Time  `gorm:"column:start_time" json:"start_time"`
	EndTime     *time.Time `gorm:"column:end_time" json:"end_time"`
	HoursWorked *float64   `gorm:"column:hours_worked" json:"hours_worked"`
	Description *string    `gorm:"column:description" json:"description"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`

	Project  Project  `gorm:"foreignKey:ProjectID;references:ProjectID" json:"project,omitempty"`
	Employee Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
}

// IsCompleted reports whether the timer has been stopped. An entry with no
// end_time is still running.
func (t TimeEntry) IsCompleted() bool {
	return t.EndTime != nil
}

// Stop closes the entry at the given instant and computes hours_worked from
// the elapsed duration. Stopping an already completed entry is a no-op.
func (t *TimeEntry) Stop(at time.Time) {
	if t.EndTime != nil {
		return
	}
	end := at
	hours := end.Sub(t.StartTime).Hours()
	if hours < 0 {
		hours = 0
	}
	t.EndTime = &end
	t.HoursWorked = &hours
}

// TableName overrides the table name for TimeEntry
func (TimeEntry) TableName() string {
	return "time_entries"
}
