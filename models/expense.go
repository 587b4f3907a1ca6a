package models

import "time"

// ExpenseCategories are the seven fixed expense categories.
var ExpenseCategories = []string{
	"materiaux",
	"main_oeuvre",
	"equipement",
	"transport",
	"sous_traitance",
	"administratif",
	"autre",
}

// Expense represents the expenses table
type Expense struct {
	ExpenseID   int        `gorm:"primaryKey;column:expense_id" json:"expense_id"`
	UserID      int        `gorm:"column:user_id" json:"user_id"`
	ProjectID   *int       `gorm:"column:project_id" json:"project_id"`
	Description string     `gorm:"column:description" json:"description"`
	Amount      float64    `gorm:"column:amount" json:"amount"`
	Category    string     `gorm:"column:category" json:"category"`
	Date        time.Time  `gorm:"column:date" json:"date"`
	ReceiptID   *int       `gorm:"column:receipt_id" json:"receipt_id"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`

	Project *Project    `gorm:"foreignKey:ProjectID;references:ProjectID" json:"project,omitempty"`
	Receipt *FileUpload `gorm:"foreignKey:ReceiptID;references:FileID" json:"receipt,omitempty"`
}

// TableName overrides the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}

// ValidExpenseCategory reports whether category is one of the fixed strings.
func ValidExpenseCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}
