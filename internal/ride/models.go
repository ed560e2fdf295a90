package ride

import "time"

type Ride struct {
	ID          string    `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Price       int       `json:"price"`
	SeatsTotal  int       `json:"seats_total"`
	SeatsBooked int       `json:"seats_booked"`
	PostedBy    string    `json:"posted_by"`
	PostedPhone string    `json:"posted_phone,omitempty"`
	PostedYear  string    `json:"posted_year,omitempty"`
	PostedEmail string    `json:"posted_email"`
	UserID      string    `json:"user_id"`
	PostedAt    time.Time `json:"posted_at"`
}

// SeatsLeft is the remaining capacity of the ride.
func (r Ride) SeatsLeft() int {
	return r.SeatsTotal - r.SeatsBooked
}
