package domain

import (
	"errors"
	"time"
)

// PaymentStatus represents the settlement state of an administration payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

var validPaymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPaid, PaymentOverdue},
	PaymentOverdue: {PaymentPaid},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range validPaymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

var ErrPaymentNotFound = errors.New("payment not found")

// Payment is a monthly administration charge against an apartment.
type Payment struct {
	ID          string        `json:"id" bson:"-"`
	ApartmentID string        `json:"apartment_id" bson:"apartment_id"`
	Amount      float64       `json:"amount" bson:"amount"`
	DueDate     time.Time     `json:"due_date" bson:"due_date"`
	PaymentDate *time.Time    `json:"payment_date,omitempty" bson:"payment_date,omitempty"`
	Status      PaymentStatus `json:"status" bson:"status"`
	Description string        `json:"description" bson:"description"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

// IsOverdue reports whether an unpaid charge is past its due date.
func (p *Payment) IsOverdue(now time.Time) bool {
	return p.Status == PaymentPending && now.After(p.DueDate)
}
