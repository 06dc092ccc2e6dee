package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order holds an accepted-order payload verbatim. The payload has no
// schema of its own; it is stored and returned as submitted.
type Order struct {
	gorm.Model
	Payload datatypes.JSON `json:"payload" gorm:"column:payload"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}
