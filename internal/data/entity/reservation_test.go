package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReservationNights(t *testing.T) {
	testCases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{
			name:     "Three nights",
			checkIn:  date(2024, 1, 10),
			checkOut: date(2024, 1, 13),
			expected: 3,
		},
		{
			name:     "Single night",
			checkIn:  date(2024, 6, 1),
			checkOut: date(2024, 6, 2),
			expected: 1,
		},
		{
			name:     "Zero-length stay",
			checkIn:  date(2024, 6, 1),
			checkOut: date(2024, 6, 1),
			expected: 0,
		},
		{
			name:     "Missing check-in",
			checkOut: date(2024, 6, 1),
			expected: 0,
		},
		{
			name:    "Missing check-out",
			checkIn: date(2024, 6, 1),
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := &Reservation{CheckInDate: tc.checkIn, CheckOutDate: tc.checkOut}
			assert.Equal(t, tc.expected, r.Nights())
		})
	}
}

func TestReservationOverlaps(t *testing.T) {
	// Existing stay 2024-06-01 .. 2024-06-05.
	r := &Reservation{
		CheckInDate:  date(2024, 6, 1),
		CheckOutDate: date(2024, 6, 5),
	}

	testCases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected bool
	}{
		{"Overlapping middle", date(2024, 6, 3), date(2024, 6, 7), true},
		{"Fully inside", date(2024, 6, 2), date(2024, 6, 4), true},
		{"Fully covering", date(2024, 5, 30), date(2024, 6, 10), true},
		{"Touching at checkout", date(2024, 6, 5), date(2024, 6, 8), false},
		{"Touching at checkin", date(2024, 5, 28), date(2024, 6, 1), false},
		{"Entirely before", date(2024, 5, 20), date(2024, 5, 25), false},
		{"Entirely after", date(2024, 6, 10), date(2024, 6, 12), false},
		{"Zero-length inside", date(2024, 6, 3), date(2024, 6, 3), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Overlaps(tc.checkIn, tc.checkOut))
		})
	}
}

func TestReservationStatusIsActive(t *testing.T) {
	assert.True(t, ReservationStatusPending.IsActive())
	assert.True(t, ReservationStatusConfirmed.IsActive())
	assert.True(t, ReservationStatusCheckedIn.IsActive())
	assert.False(t, ReservationStatusCheckedOut.IsActive())
	assert.False(t, ReservationStatusCancelled.IsActive())
}

func TestParseStatuses(t *testing.T) {
	s, ok := ParseReservationStatus("CHECKED_IN")
	assert.True(t, ok)
	assert.Equal(t, ReservationStatusCheckedIn, s)

	_, ok = ParseReservationStatus("checked_in")
	assert.False(t, ok)

	p, ok := ParsePaymentStatus("REFUNDED")
	assert.True(t, ok)
	assert.Equal(t, PaymentStatusRefunded, p)

	_, ok = ParseRoomStatus("BOOKED")
	assert.False(t, ok)
}
