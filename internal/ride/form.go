package ride

import (
	"errors"
	"math"
	"time"
)

// Form carries the raw ride-creation input before it becomes a Ride.
type Form struct {
	PosterName  string `json:"poster_name"`
	PosterPhone string `json:"poster_phone"`
	PosterYear  string `json:"poster_year"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	TotalCost   int    `json:"total_cost"`
	Capacity    int    `json:"capacity"`
}

func (f Form) Validate() error {
	if f.PosterName == "" || f.Origin == "" || f.Destination == "" {
		return errors.New("poster_name, origin, destination required")
	}
	if f.Capacity <= 0 {
		return errors.New("capacity must be positive")
	}
	if f.TotalCost < 0 {
		return errors.New("total_cost must not be negative")
	}
	if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", f.Time); err != nil {
		return errors.New("time must be HH:MM")
	}
	return nil
}

// PerHead is the per-seat price, total trip cost split across capacity.
func (f Form) PerHead() int {
	if f.Capacity <= 0 {
		return 0
	}
	return int(math.Round(float64(f.TotalCost) / float64(f.Capacity)))
}

// Build assembles a new Ride for the signed-in poster. Seats start unbooked.
func (f Form) Build(email, userID string) Ride {
	return Ride{
		Origin:      f.Origin,
		Destination: f.Destination,
		Date:        f.Date,
		Time:        f.Time,
		Price:       f.PerHead(),
		SeatsTotal:  f.Capacity,
		SeatsBooked: 0,
		PostedBy:    f.PosterName,
		PostedPhone: f.PosterPhone,
		PostedYear:  f.PosterYear,
		PostedEmail: email,
		UserID:      userID,
	}
}
