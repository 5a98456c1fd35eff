package services

// Position is a simulated courier coordinate for the delivery map.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// positionFraction is how much of the remaining distance the simulated
// courier covers per tick. The position approaches the destination
// asymptotically and never exactly reaches it; the feed is cosmetic and
// carries no arrival guarantee.
const positionFraction = 0.1

// AdvancePosition moves the position one tick toward the destination.
func AdvancePosition(cur, dest Position) Position {
	return Position{
		Lat: cur.Lat + (dest.Lat-cur.Lat)*positionFraction,
		Lng: cur.Lng + (dest.Lng-cur.Lng)*positionFraction,
	}
}
