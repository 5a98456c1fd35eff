package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvancePositionApproachesDestination(t *testing.T) {
	dest := Position{Lat: 10, Lng: 10}
	p := AdvancePosition(Position{}, dest)
	assert.InDelta(t, 1.0, p.Lat, 1e-9)
	assert.InDelta(t, 1.0, p.Lng, 1e-9)

	p = AdvancePosition(p, dest)
	assert.InDelta(t, 1.9, p.Lat, 1e-9)
	assert.InDelta(t, 1.9, p.Lng, 1e-9)
}

func TestAdvancePositionShrinksDistance(t *testing.T) {
	dest := Position{Lat: -23.561684, Lng: -46.656139}
	p := Position{Lat: -23.55, Lng: -46.63}
	for i := 0; i < 50; i++ {
		next := AdvancePosition(p, dest)
		assert.Less(t, abs(dest.Lat-next.Lat), abs(dest.Lat-p.Lat))
		assert.Less(t, abs(dest.Lng-next.Lng), abs(dest.Lng-p.Lng))
		p = next
	}
}

func TestAdvancePositionAtDestinationStays(t *testing.T) {
	dest := Position{Lat: 5, Lng: 5}
	p := AdvancePosition(dest, dest)
	assert.Equal(t, dest, p)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
