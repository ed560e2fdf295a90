package ride

import "errors"

var (
	// ErrNotFound is returned when the ride id does not exist on the board.
	ErrNotFound = errors.New("ride not found")
	// ErrSeatsFull is returned when joining a ride with no seats left.
	ErrSeatsFull = errors.New("no seats available")
	// ErrNotOwner is returned when a requester tries to delete a ride posted
	// by someone else.
	ErrNotOwner = errors.New("ride posted by another user")
)
