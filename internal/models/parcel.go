package models

import (
	"fmt"

	"gorm.io/gorm"
)

// ParcelState is the delivery lifecycle state of a parcel booking.
type ParcelState string

const (
	ParcelStatePending   ParcelState = "pending"
	ParcelStateAccepted  ParcelState = "accept"
	ParcelStateDelivered ParcelState = "delivered"
)

// InvalidTransitionError is returned when a parcel is asked to move to a
// state that does not follow pending -> accept -> delivered.
type InvalidTransitionError struct {
	From ParcelState
	To   ParcelState
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid parcel state transition: %s -> %s", e.From, e.To)
}

// CanTransitionTo reports whether next is the immediate successor of s.
func (s ParcelState) CanTransitionTo(next ParcelState) bool {
	switch s {
	case ParcelStatePending:
		return next == ParcelStateAccepted
	case ParcelStateAccepted:
		return next == ParcelStateDelivered
	default:
		return false
	}
}

type Parcel struct {
	gorm.Model
	SenderEmail      string      `json:"sender_email" gorm:"column:sender_email;not null"`
	SenderPhone      string      `json:"sender_phone" gorm:"column:sender_phone"`
	ReceiverEmail    string      `json:"receiver_email" gorm:"column:receiver_email;not null"`
	ReceiverPhone    string      `json:"receiver_phone" gorm:"column:receiver_phone"`
	SenderLocation   string      `json:"sender_location" gorm:"column:sender_location"`
	ReceiverLocation string      `json:"receiver_location" gorm:"column:receiver_location"`
	ProductWeight    float64     `json:"product_weight" gorm:"column:product_weight"`
	ParcelType       string      `json:"parcel_type" gorm:"column:parcel_type"`
	PaymentMethod    string      `json:"payment_method" gorm:"column:payment_method"`
	PressedTime      string      `json:"pressed_time" gorm:"column:pressed_time"`
	State            ParcelState `json:"state" gorm:"column:state;not null;default:'pending'"`
	Charge           string      `json:"charge" gorm:"column:charge"`
}

// TableName specifies the table name
func (Parcel) TableName() string {
	return "parcel_info"
}

// TransitionTo moves the parcel to next, rejecting anything other than the
// pending -> accept -> delivered sequence.
func (p *Parcel) TransitionTo(next ParcelState) error {
	if !p.State.CanTransitionTo(next) {
		return &InvalidTransitionError{From: p.State, To: next}
	}
	p.State = next
	return nil
}

// CourierType classifies a parcel by product weight.
type CourierType string

const (
	CourierCyclist       CourierType = "cyclist"
	CourierBiker         CourierType = "biker"
	CourierPickupVehicle CourierType = "pickup_vehicle"
	CourierNone          CourierType = ""
)

// PickupMinWeight is the open-ended lower bound of the pickup-vehicle bucket.
const PickupMinWeight = 21

// CyclistWeights returns the exact weights served by a cyclist. The cyclist
// and biker buckets are integer sets, so fractional weights under 21 match
// no courier at all.
func CyclistWeights() []float64 {
	return weightRange(1, 10)
}

// BikerWeights returns the exact weights served by a biker.
func BikerWeights() []float64 {
	return weightRange(11, 20)
}

func weightRange(lo, hi int) []float64 {
	weights := make([]float64, 0, hi-lo+1)
	for w := lo; w <= hi; w++ {
		weights = append(weights, float64(w))
	}
	return weights
}

// CourierForWeight returns the courier bucket a weight falls into, or
// CourierNone when it matches no bucket.
func CourierForWeight(w float64) CourierType {
	if w >= PickupMinWeight {
		return CourierPickupVehicle
	}
	if w != float64(int(w)) || w < 1 {
		return CourierNone
	}
	if w <= 10 {
		return CourierCyclist
	}
	return CourierBiker
}
