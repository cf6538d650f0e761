package domain

import "time"

// Timestamps holds the creation and modification times of a domain entity, always in UTC.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTimestamps returns Timestamps with both fields set to now in UTC.
func NewTimestamps(now time.Time) Timestamps {
	now = now.UTC()
	return Timestamps{CreatedAt: now, UpdatedAt: now}
}

// Touch refreshes UpdatedAt. The value never moves backwards and never precedes CreatedAt.
func (t *Timestamps) Touch(now time.Time) {
	now = now.UTC()
	if now.Before(t.UpdatedAt) {
		now = t.UpdatedAt
	}
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	t.UpdatedAt = now
}
