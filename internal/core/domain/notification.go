package domain

import (
	"errors"
	"time"
)

// NotificationType classifies what triggered a notification.
type NotificationType string

const (
	NotifGeneral        NotificationType = "general"
	NotifMaintenance    NotificationType = "maintenance"
	NotifPayment        NotificationType = "payment"
	NotifBookingCheckin NotificationType = "booking_checkin"
	NotifDamageReport   NotificationType = "damage_report"
)

// RecipientType describes the audience a notification targets.
type RecipientType string

const (
	RecipientAll     RecipientType = "all"
	RecipientOwners  RecipientType = "owners"
	RecipientTenants RecipientType = "tenants"
	RecipientStaff   RecipientType = "staff" // admin + security
	RecipientUser    RecipientType = "user"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification is a message delivered to one user or broadcast to a group.
// Broadcast rows carry an empty RecipientID and are visible to every user
// matching RecipientType.
type Notification struct {
	ID            string           `json:"id" bson:"-"`
	Title         string           `json:"title" bson:"title"`
	Message       string           `json:"message" bson:"message"`
	Type          NotificationType `json:"type" bson:"type"`
	RecipientType RecipientType    `json:"recipient_type" bson:"recipient_type"`
	// RecipientID is stored even when empty so broadcast rows can be
	// filtered on the empty value.
	RecipientID string    `json:"recipient_id,omitempty" bson:"recipient_id"`
	ApartmentID string    `json:"apartment_id,omitempty" bson:"apartment_id,omitempty"`
	IsRead      bool      `json:"is_read" bson:"is_read"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
