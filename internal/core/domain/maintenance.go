package domain

import (
	"errors"
	"time"
)

// MaintenanceStatus represents the lifecycle state of a scheduled maintenance task.
type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

var validMaintenanceTransitions = map[MaintenanceStatus][]MaintenanceStatus{
	MaintenancePending:    {MaintenanceInProgress, MaintenanceCancelled},
	MaintenanceInProgress: {MaintenanceCompleted, MaintenanceCancelled},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s MaintenanceStatus) CanTransitionTo(next MaintenanceStatus) bool {
	for _, allowed := range validMaintenanceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Common areas that maintenance can be scheduled for.
const (
	AreaPool       = "pool"
	AreaGym        = "gym"
	AreaElevator   = "elevator"
	AreaCommonArea = "common_area"
	AreaGardens    = "gardens"
)

var ErrMaintenanceNotFound = errors.New("maintenance not found")

// Maintenance is a scheduled task on one of the complex's common areas.
type Maintenance struct {
	ID            string            `json:"id" bson:"-"`
	Title         string            `json:"title" bson:"title"`
	Description   string            `json:"description" bson:"description"`
	Area          string            `json:"area" bson:"area"`
	Priority      string            `json:"priority" bson:"priority"`
	Status        MaintenanceStatus `json:"status" bson:"status"`
	ScheduledDate time.Time         `json:"scheduled_date" bson:"scheduled_date"`
	CompletedDate *time.Time        `json:"completed_date,omitempty" bson:"completed_date,omitempty"`
	CreatedAt     time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" bson:"updated_at"`
}
