package ride

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/nishchayy07/ThaparRideShare/internal/db"
	"github.com/nishchayy07/ThaparRideShare/internal/stream"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Service struct {
	db  db.Querier
	hub *stream.Hub
}

func NewService(db db.Querier, hub *stream.Hub) *Service {
	return &Service{db: db, hub: hub}
}

func (s *Service) Create(ctx context.Context, input Ride) (Ride, error) {
	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO rides (id, origin, destination, ride_date, depart_time, price,
		                   seats_total, seats_booked, posted_by, posted_phone,
		                   posted_year, posted_email, user_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING posted_at
	`, input.ID, input.Origin, input.Destination, input.Date, input.Time, input.Price,
		input.SeatsTotal, input.SeatsBooked, input.PostedBy, input.PostedPhone,
		input.PostedYear, input.PostedEmail, input.UserID)
	if err := row.Scan(&input.PostedAt); err != nil {
		return Ride{}, err
	}

	s.broadcast(ctx)
	return input, nil
}

func (s *Service) Get(ctx context.Context, id string) (Ride, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, origin, destination, ride_date, depart_time, price,
		       seats_total, seats_booked, posted_by, posted_phone,
		       posted_year, posted_email, user_id, posted_at
		FROM rides WHERE id=$1
	`, id)
	var r Ride
	if err := row.Scan(&r.ID, &r.Origin, &r.Destination, &r.Date, &r.Time, &r.Price,
		&r.SeatsTotal, &r.SeatsBooked, &r.PostedBy, &r.PostedPhone,
		&r.PostedYear, &r.PostedEmail, &r.UserID, &r.PostedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Ride{}, ErrNotFound
		}
		return Ride{}, err
	}
	return r, nil
}

// List returns the whole board in posting order.
func (s *Service) List(ctx context.Context) ([]Ride, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, origin, destination, ride_date, depart_time, price,
		       seats_total, seats_booked, posted_by, posted_phone,
		       posted_year, posted_email, user_id, posted_at
		FROM rides
		ORDER BY posted_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []Ride
	for rows.Next() {
		var r Ride
		if err := rows.Scan(&r.ID, &r.Origin, &r.Destination, &r.Date, &r.Time, &r.Price,
			&r.SeatsTotal, &r.SeatsBooked, &r.PostedBy, &r.PostedPhone,
			&r.PostedYear, &r.PostedEmail, &r.UserID, &r.PostedAt); err != nil {
			return nil, err
		}
		rides = append(rides, r)
	}
	return rides, nil
}

// Delete removes a ride, but only for the user who posted it.
func (s *Service) Delete(ctx context.Context, id, requesterEmail string) error {
	r, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if r.PostedEmail != requesterEmail {
		return ErrNotOwner
	}

	if _, err := s.db.Exec(ctx, `DELETE FROM rides WHERE id=$1`, id); err != nil {
		return err
	}

	s.broadcast(ctx)
	return nil
}

// Join claims one seat. The increment is a single conditional update so two
// concurrent joiners can never oversubscribe a ride.
func (s *Service) Join(ctx context.Context, id string) (Ride, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE rides SET seats_booked = seats_booked + 1
		WHERE id=$1 AND seats_booked < seats_total
		RETURNING id, origin, destination, ride_date, depart_time, price,
		          seats_total, seats_booked, posted_by, posted_phone,
		          posted_year, posted_email, user_id, posted_at
	`, id)
	var r Ride
	err := row.Scan(&r.ID, &r.Origin, &r.Destination, &r.Date, &r.Time, &r.Price,
		&r.SeatsTotal, &r.SeatsBooked, &r.PostedBy, &r.PostedPhone,
		&r.PostedYear, &r.PostedEmail, &r.UserID, &r.PostedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// Either the ride is gone or it is full; a second read tells which.
		if _, getErr := s.Get(ctx, id); getErr != nil {
			return Ride{}, getErr
		}
		return Ride{}, ErrSeatsFull
	}
	if err != nil {
		return Ride{}, err
	}

	s.broadcast(ctx)
	return r, nil
}

// broadcast pushes the full board snapshot to feed subscribers after a
// mutation, mirroring the change-notification contract of the store.
func (s *Service) broadcast(ctx context.Context) {
	if s.hub == nil {
		return
	}
	rides, err := s.List(ctx)
	if err != nil {
		log.Printf("board snapshot failed: %v", err)
		return
	}
	payload, _ := json.Marshal(rides)
	s.hub.Broadcast(stream.RidesFeed, payload)
}
