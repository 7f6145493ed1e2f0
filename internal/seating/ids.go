package seating

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator issues node ids. Ids must be unique across the whole tree.
type IDGenerator interface {
	NewID(kind NodeKind) string
}

type uuidGenerator struct{}

// NewUUIDGenerator returns a generator producing "<kind>-<uuid>" ids.
func NewUUIDGenerator() IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID(kind NodeKind) string {
	return string(kind) + "-" + uuid.NewString()
}

// SeatID derives the id of the seat with the given 1-based number in a row.
func SeatID(rowID string, number int) string {
	return rowID + ":" + strconv.Itoa(number)
}

// ParseSeatID splits a seat id into its row id and seat number.
func ParseSeatID(seatID string) (rowID string, number int, err error) {
	i := strings.LastIndex(seatID, ":")
	if i <= 0 || i == len(seatID)-1 {
		return "", 0, fmt.Errorf("%w: malformed seat id %q", ErrInvalidInput, seatID)
	}
	number, err = strconv.Atoi(seatID[i+1:])
	if err != nil || number < 1 {
		return "", 0, fmt.Errorf("%w: malformed seat id %q", ErrInvalidInput, seatID)
	}
	return seatID[:i], number, nil
}
