package seating

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func buildSampleLayout(t *testing.T) *Stadium {
	t.Helper()
	e := newTestEditor()
	s := e.NewStadium("National Stadium", "NAT")
	s, a := buildStand(t, e, s, "North", 2, 2, 2, 8)
	s, _ = buildStand(t, e, s, "South", 1, 3, 1, 0)

	st, _ := s.FindStand(a)
	tier, sec := st.Tiers[1], st.Tiers[1].Sections[0]
	price := 1200.0
	blocked := StatusBlocked
	var err error
	if s, err = e.UpdateSection(s, a, tier.ID, sec.ID, SectionUpdate{PriceOverride: &price, Status: &blocked}); err != nil {
		t.Fatal(err)
	}
	if s, err = e.SetSeatOverride(s, SeatID(sec.Rows[1].ID, 4), SeatOverride{Status: SeatBooked, TicketTypeID: "vip"}); err != nil {
		t.Fatal(err)
	}
	if s, err = e.AssignTicketType(s, tier.ID, "upper"); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRoundTripIsByteIdentical(t *testing.T) {
	s := buildSampleLayout(t)

	first, err := Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	decoded, err := Unmarshal(first)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	second, err := Marshal(decoded)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("round trip changed the document:\n%s\n%s", first, second)
	}

	if decoded.StadiumCapacity(CapacityOptions{}) != s.StadiumCapacity(CapacityOptions{}) {
		t.Error("capacity changed across round trip")
	}
}

func TestDocumentFieldNames(t *testing.T) {
	data, err := Marshal(buildSampleLayout(t))
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{
		`"stands"`, `"tiers"`, `"sections"`, `"rows"`, `"stadiumId"`, `"standId"`,
		`"tierId"`, `"sectionId"`, `"basePrice"`, `"priceOverride"`, `"seatCount"`,
		`"seatOverrides"`, `"ticketTypeId"`, `"startAngle"`, `"visualWeight"`,
	} {
		if !bytes.Contains(data, []byte(field)) {
			t.Errorf("document has no %s field", field)
		}
	}
}

func TestUnmarshalRejectsInvalidDocuments(t *testing.T) {
	valid, err := Marshal(buildSampleLayout(t))
	if err != nil {
		t.Fatal(err)
	}
	s, _ := Unmarshal(valid)
	tierID := s.Stands[0].Tiers[0].ID
	standB := s.Stands[1].ID
	rowID := s.Stands[0].Tiers[0].Sections[0].Rows[0].ID

	tests := []struct {
		name    string
		corrupt func(doc string) string
	}{
		{"malformed json", func(doc string) string { return doc[:len(doc)/2] }},
		{"duplicate id", func(doc string) string { return strings.Replace(doc, standB, tierID, 1) }},
		{"order gap", func(doc string) string {
			return strings.Replace(doc, `"order":1`, `"order":5`, 1)
		}},
		{"unknown status", func(doc string) string {
			return strings.Replace(doc, `"status":"active"`, `"status":"closed"`, 1)
		}},
		{"bad shape", func(doc string) string { return strings.Replace(doc, `"shape":"arc"`, `"shape":"oval"`, 1) }},
		{"negative seat count", func(doc string) string { return strings.Replace(doc, `"seatCount":8`, `"seatCount":-8`, 1) }},
		{"colon in row id", func(doc string) string {
			return strings.Replace(doc, `"id":"`+rowID+`"`, `"id":"`+rowID+`:2"`, 1)
		}},
		{"override outside row", func(doc string) string {
			return strings.Replace(doc, `"seatOverrides":{"`, `"seatOverrides":{"`+rowID+`:99":{"status":"booked"},"`, 1)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.corrupt(string(valid))))
			if !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("err = %v, want ErrInvalidDocument", err)
			}
		})
	}
}
