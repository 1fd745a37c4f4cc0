// Package pipeline holds the application status enum and the rules applied
// when a status changes.
//
// Any status may follow any other; there is no transition table and the
// terminal statuses (accepted, rejected) can be left again. The only side
// effect of a change is the one-time AppliedAt stamp.
package pipeline

import (
	"time"

	"jobhunter/internal/apperr"
)

type Status string

const (
	Saved        Status = "saved"
	Applied      Status = "applied"
	Interviewing Status = "interviewing"
	Offer        Status = "offer"
	Accepted     Status = "accepted"
	Rejected     Status = "rejected"
)

// Statuses lists every status in funnel order.
var Statuses = []Status{Saved, Applied, Interviewing, Offer, Accepted, Rejected}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

func Parse(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", apperr.Validation("invalid status %q: must be one of saved, applied, interviewing, offer, accepted, rejected", raw)
	}
	return s, nil
}

// Stamp returns the AppliedAt value after moving to next. It is set to now the
// first time the application leaves saved and is never cleared afterwards.
func Stamp(appliedAt *time.Time, next Status, now time.Time) *time.Time {
	if appliedAt != nil || next == Saved {
		return appliedAt
	}
	t := now.UTC()
	return &t
}

// Change is the outcome of a status update.
type Change struct {
	From      Status
	To        Status
	AppliedAt *time.Time
}

func (c Change) Changed() bool {
	return c.From != c.To
}

// SetStatus applies next on top of current.
func SetStatus(current Status, appliedAt *time.Time, next Status, now time.Time) (Change, error) {
	if !next.Valid() {
		return Change{}, apperr.Validation("invalid status %q", next)
	}
	return Change{
		From:      current,
		To:        next,
		AppliedAt: Stamp(appliedAt, next, now),
	}, nil
}

// OnInterviewScheduled moves an application that has not reached the
// interview stage yet to interviewing. Later statuses are left untouched.
func OnInterviewScheduled(current Status, appliedAt *time.Time, now time.Time) Change {
	if current != Saved && current != Applied {
		return Change{From: current, To: current, AppliedAt: appliedAt}
	}
	return Change{
		From:      current,
		To:        Interviewing,
		AppliedAt: Stamp(appliedAt, Interviewing, now),
	}
}
