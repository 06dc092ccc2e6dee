package models

import (
	"gorm.io/gorm"
)

// RiderStateAccepted marks a rider who has accepted an assignment.
const RiderStateAccepted = "accept"

type Rider struct {
	gorm.Model
	Username    string `json:"username" gorm:"column:username;not null"`
	Email       string `json:"email" gorm:"column:email;unique;not null"`
	PhoneNumber string `json:"phoneNumber" gorm:"column:phone_number"`
	Area        string `json:"area" gorm:"column:area"`
	VehicleType string `json:"vehicleType" gorm:"column:vehicle_type"`
	State       string `json:"state" gorm:"column:state"`
}

// TableName specifies the table name
func (Rider) TableName() string {
	return "riders"
}
