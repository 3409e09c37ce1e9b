package domain

import "time"

// ReservationStatus is the lifecycle state of a table reservation.
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// Reservation books a table for a party at a given time.
type Reservation struct {
	ID              string            `json:"id"`
	UserID          string            `json:"userId"`
	Date            time.Time         `json:"date"`
	PartySize       int               `json:"partySize"`
	Status          ReservationStatus `json:"status"`
	SpecialRequests string            `json:"specialRequests,omitempty"`
	ContactPhone    string            `json:"contactPhone,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// Valid reports whether s is a known reservation status.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}
