package models

import "time"

// Material represents the materials table
type Material struct {
	MaterialID        int        `gorm:"primaryKey;column:material_id" json:"material_id"`
	UserID            int        `gorm:"column:user_id" json:"user_id"`
	Name              string     `gorm:"column:name" json:"name"`
	Category          *string    `gorm:"column:category" json:"category"`
	Unit              *string    `gorm:"column:unit" json:"unit"`
	UnitPrice         float64    `gorm:"column:unit_price" json:"unit_price"`
	StockQuantity     float64    `gorm:"column:stock_quantity" json:"stock_quantity"`
	MinStockThreshold float64    `gorm:"column:min_stock_threshold" json:"min_stock_threshold"`
	Supplier          *string    `gorm:"column:supplier" json:"supplier"`
	CreateAt          *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt          *time.Time `gorm:"column:update_at" json:"update_at"`
}

// IsLowStock reports whether the stock level has fallen to or below the
// configured threshold.
func (m Material) IsLowStock() bool {
	return m.StockQuantity <= m.MinStockThreshold
}

// TableName overrides the table name for Material
func (Material) TableName() string {
	return "materials"
}
