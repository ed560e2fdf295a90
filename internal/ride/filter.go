package ride

import "strings"

const (
	FilterAll     = "all"
	FilterLeaving = "leaving"
	FilterComing  = "coming"
	FilterMine    = "mine"
)

// Select returns the subset of rides visible under a filter mode, preserving
// input order. Unknown modes behave like FilterAll.
func Select(rides []Ride, mode, currentEmail string) []Ride {
	switch mode {
	case FilterLeaving:
		return keep(rides, func(r Ride) bool { return mentionsCampus(r.Origin) })
	case FilterComing:
		return keep(rides, func(r Ride) bool { return mentionsCampus(r.Destination) })
	case FilterMine:
		return keep(rides, func(r Ride) bool { return r.PostedEmail == currentEmail })
	default:
		return rides
	}
}

func keep(rides []Ride, match func(Ride) bool) []Ride {
	out := make([]Ride, 0, len(rides))
	for _, r := range rides {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

func mentionsCampus(place string) bool {
	p := strings.ToLower(place)
	return strings.Contains(p, "thapar") || strings.Contains(p, "tiet")
}
