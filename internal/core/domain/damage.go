package domain

import (
	"errors"
	"time"
)

// DamageStatus represents the handling state of a damage report.
type DamageStatus string

const (
	DamageReported     DamageStatus = "reported"
	DamageAcknowledged DamageStatus = "acknowledged"
	DamageInProgress   DamageStatus = "in_progress"
	DamageResolved     DamageStatus = "resolved"
)

var validDamageTransitions = map[DamageStatus][]DamageStatus{
	DamageReported:     {DamageAcknowledged, DamageInProgress},
	DamageAcknowledged: {DamageInProgress, DamageResolved},
	DamageInProgress:   {DamageResolved},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s DamageStatus) CanTransitionTo(next DamageStatus) bool {
	for _, allowed := range validDamageTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// DamagePriority is the severity assigned by the reporter.
type DamagePriority string

const (
	PriorityLow    DamagePriority = "low"
	PriorityMedium DamagePriority = "medium"
	PriorityHigh   DamagePriority = "high"
	PriorityUrgent DamagePriority = "urgent"
)

var validDamagePriorities = map[DamagePriority]struct{}{
	PriorityLow:    {},
	PriorityMedium: {},
	PriorityHigh:   {},
	PriorityUrgent: {},
}

// IsValid reports whether p is a recognised priority value.
func (p DamagePriority) IsValid() bool {
	_, ok := validDamagePriorities[p]
	return ok
}

var ErrDamageReportNotFound = errors.New("damage report not found")
var ErrInvalidPriority = errors.New("invalid priority")

// DamageReport is filed by a resident against an apartment or fixture.
type DamageReport struct {
	ID          string         `json:"id" bson:"-"`
	ApartmentID string         `json:"apartment_id" bson:"apartment_id"`
	ReportedBy  string         `json:"reported_by" bson:"reported_by"`
	Title       string         `json:"title" bson:"title"`
	Description string         `json:"description" bson:"description"`
	Priority    DamagePriority `json:"priority" bson:"priority"`
	Status      DamageStatus   `json:"status" bson:"status"`
	Images      []string       `json:"images,omitempty" bson:"images,omitempty"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}
