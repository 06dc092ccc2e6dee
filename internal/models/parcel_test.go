package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParcelTransitions(t *testing.T) {
	p := Parcel{State: ParcelStatePending}

	require.NoError(t, p.TransitionTo(ParcelStateAccepted))
	assert.Equal(t, ParcelStateAccepted, p.State)

	require.NoError(t, p.TransitionTo(ParcelStateDelivered))
	assert.Equal(t, ParcelStateDelivered, p.State)
}

func TestParcelRejectsSkippedTransition(t *testing.T) {
	p := Parcel{State: ParcelStatePending}

	err := p.TransitionTo(ParcelStateDelivered)
	require.Error(t, err)
	assert.Equal(t, ParcelStatePending, p.State, "state must not change on a rejected transition")

	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, ParcelStatePending, invalid.From)
	assert.Equal(t, ParcelStateDelivered, invalid.To)
}

func TestParcelRejectsReversedTransition(t *testing.T) {
	p := Parcel{State: ParcelStateDelivered}

	assert.Error(t, p.TransitionTo(ParcelStateAccepted))
	assert.Error(t, p.TransitionTo(ParcelStatePending))

	p.State = ParcelStateAccepted
	assert.Error(t, p.TransitionTo(ParcelStatePending))
	assert.Error(t, p.TransitionTo(ParcelStateAccepted))
}

func TestCourierForWeight(t *testing.T) {
	tests := []struct {
		weight float64
		want   CourierType
	}{
		{1, CourierCyclist},
		{7, CourierCyclist},
		{10, CourierCyclist},
		{11, CourierBiker},
		{15, CourierBiker},
		{20, CourierBiker},
		{21, CourierPickupVehicle},
		{21.5, CourierPickupVehicle},
		{100, CourierPickupVehicle},
		{0, CourierNone},
		{0.5, CourierNone},
		{-3, CourierNone},
		{15.5, CourierNone}, // fractional weights under 21 match no bucket
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, CourierForWeight(tt.weight), "weight %v", tt.weight)
	}
}

func TestWeightBucketsAreExactIntegerSets(t *testing.T) {
	assert.Len(t, CyclistWeights(), 10)
	assert.Equal(t, 1.0, CyclistWeights()[0])
	assert.Equal(t, 10.0, CyclistWeights()[9])

	assert.Len(t, BikerWeights(), 10)
	assert.Equal(t, 11.0, BikerWeights()[0])
	assert.Equal(t, 20.0, BikerWeights()[9])
}
