package seating

import (
	"math"
	"strconv"
)

// SeatPlacement is the position hint for one seat, relative to the row origin.
type SeatPlacement struct {
	Index  int     `json:"index"`
	Number int     `json:"number"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// GenerateSeats lays out row.SeatCount seats centred on the row's offset.
// Seats are spaced evenly along X and bowed along Y by Curve pixels at the
// centre of the row, tapering to zero at both ends. The result depends only
// on SeatCount and Geometry.
func GenerateSeats(row Row) []SeatPlacement {
	n := row.SeatCount
	if n <= 0 {
		return []SeatPlacement{}
	}

	g := row.Geometry
	mid := float64(n-1) / 2
	placements := make([]SeatPlacement, n)
	for i := 0; i < n; i++ {
		rel := float64(i) - mid
		t := 0.0
		if mid > 0 {
			t = rel / mid
		}
		placements[i] = SeatPlacement{
			Index:  i,
			Number: i + 1,
			X:      round2(g.OffsetX + rel*g.Spacing),
			Y:      round2(g.OffsetY + g.Curve*(1-t*t)),
		}
	}
	return placements
}

// MaterializeSeats expands a row into seats, merging its sparse overrides and
// resolving the effective status and price. ancestorBlocked is true when any
// stand, tier or section above the row is blocked.
func MaterializeSeats(row Row, ancestorBlocked bool, price float64, ticketTypeID string) []Seat {
	placements := GenerateSeats(row)
	blocked := ancestorBlocked || row.Status == StatusBlocked

	seats := make([]Seat, len(placements))
	for i, p := range placements {
		id := SeatID(row.ID, p.Number)
		seat := Seat{
			ID:           id,
			RowID:        row.ID,
			SectionID:    row.SectionID,
			TierID:       row.TierID,
			StandID:      row.StandID,
			Index:        p.Index,
			Number:       p.Number,
			Label:        row.Label + strconv.Itoa(p.Number),
			Status:       SeatAvailable,
			Price:        price,
			TicketTypeID: ticketTypeID,
			Placement:    p,
		}
		if o, ok := row.SeatOverrides[id]; ok {
			if o.Status != "" {
				seat.Status = o.Status
			}
			if o.TicketTypeID != "" {
				seat.TicketTypeID = o.TicketTypeID
			}
		}
		if blocked {
			seat.Status = SeatBlocked
		}
		seats[i] = seat
	}
	return seats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
