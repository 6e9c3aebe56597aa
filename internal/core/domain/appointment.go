package domain

import (
	"errors"
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "Pending"
	AppointmentConfirmed AppointmentStatus = "Confirmed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
	AppointmentCompleted AppointmentStatus = "Completed"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:   {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentCompleted, AppointmentCancelled},
}

var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrInvalidAdvocate = errors.New("invalid advocate selected")

// CanTransitionTo reports whether a transition from the current status
// to next is valid.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment is a meeting booked between a client and an advocate.
// Only the owning advocate may move it through its status machine.
type Appointment struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	ClientID        uint              `json:"client" gorm:"index"`
	AdvocateID      uint              `json:"advocate" gorm:"index"`
	AppointmentDate string            `json:"appointment_date" gorm:"size:10"`
	AppointmentTime string            `json:"appointment_time" gorm:"size:8"`
	Duration        int               `json:"duration"`
	Purpose         string            `json:"purpose,omitempty"`
	Status          AppointmentStatus `json:"status" gorm:"size:10;default:Pending"`
	CreatedAt       time.Time         `json:"created_at"`
}
