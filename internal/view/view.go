package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/nishchayy07/ThaparRideShare/internal/ride"
)

const (
	ActionJoin   = "join"
	ActionDelete = "delete"
)

// Card is the display representation of a single ride.
type Card struct {
	RideID        string `json:"ride_id"`
	PosterName    string `json:"poster_name"`
	Initials      string `json:"initials"`
	PostedAgo     string `json:"posted_ago"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DateLabel     string `json:"date_label"`
	TimeLabel     string `json:"time_label"`
	Price         int    `json:"price"`
	SeatsLeft     int    `json:"seats_left"`
	SeatsTotal    int    `json:"seats_total"`
	LowSeats      bool   `json:"low_seats"`
	Mine          bool   `json:"mine"`
	Action        string `json:"action"`
	ActionEnabled bool   `json:"action_enabled"`
}

// Render maps a ride list to cards for the given viewer. It never mutates the
// input; the viewer's own rides carry a delete action, everyone else's a join
// action enabled while seats remain.
func Render(rides []ride.Ride, currentEmail string, now time.Time) []Card {
	cards := make([]Card, 0, len(rides))
	for _, r := range rides {
		mine := r.PostedEmail == currentEmail
		seatsLeft := r.SeatsLeft()

		card := Card{
			RideID:      r.ID,
			PosterName:  r.PostedBy,
			Initials:    Initials(r.PostedBy),
			PostedAgo:   TimeAgo(r.PostedAt, now),
			Origin:      r.Origin,
			Destination: r.Destination,
			DateLabel:   FormatDate(r.Date, now),
			TimeLabel:   FormatTime(r.Time),
			Price:       r.Price,
			SeatsLeft:   seatsLeft,
			SeatsTotal:  r.SeatsTotal,
			LowSeats:    seatsLeft <= 1,
			Mine:        mine,
		}
		if mine {
			card.Action = ActionDelete
			card.ActionEnabled = true
		} else {
			card.Action = ActionJoin
			card.ActionEnabled = seatsLeft > 0
		}
		cards = append(cards, card)
	}
	return cards
}

// Initials concatenates the uppercased first letter of each name token.
func Initials(name string) string {
	var b strings.Builder
	for _, token := range strings.Fields(name) {
		r := []rune(token)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// TimeAgo renders a relative posting-time label.
func TimeAgo(posted, now time.Time) string {
	diff := now.Sub(posted)
	if diff < 0 {
		diff = 0
	}
	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	default:
		return posted.Format("2 Jan")
	}
}

// FormatDate renders a YYYY-MM-DD ride date, special-casing the current and
// next day. Unparseable input passes through verbatim.
func FormatDate(dateStr string, now time.Time) string {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}

	if sameDay(d, now) {
		return "Today"
	}
	if sameDay(d, now.AddDate(0, 0, 1)) {
		return "Tomorrow"
	}
	return d.Format("2 Jan 2006")
}

// FormatTime converts 24-hour "HH:MM" to 12-hour with AM/PM, minutes kept
// verbatim. Unparseable input passes through.
func FormatTime(timeStr string) string {
	parts := strings.SplitN(timeStr, ":", 2)
	if len(parts) != 2 {
		return timeStr
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return timeStr
	}

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%s %s", hour12, parts[1], ampm)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
