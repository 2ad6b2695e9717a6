package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment is owned by the scheduling store; the scheduler only reads a
// subset and writes meetingLink / reminderSent.
type Appointment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MeetingDate     time.Time          `bson:"meetingDate" json:"meeting_date"`
	DurationMinutes int                `bson:"durationMinutes" json:"duration_minutes"`
	IsOnline        bool               `bson:"isOnline" json:"is_online"`
	IsVisible       bool               `bson:"isVisible" json:"is_visible"`
	Status          string             `bson:"status" json:"status"`
	MeetingLink     string             `bson:"meetingLink,omitempty" json:"meeting_link,omitempty"`
	ReminderSent    bool               `bson:"reminderSent,omitempty" json:"reminder_sent,omitempty"`
	PatientID       string             `bson:"patientId" json:"patient_id"`
	StaffID         string             `bson:"staffId" json:"staff_id"`
	CreatedAt       time.Time          `bson:"createdAt,omitempty" json:"created_at,omitempty"`
	UpdatedAt       time.Time          `bson:"updatedAt,omitempty" json:"updated_at,omitempty"`
}

func (a *Appointment) MeetingEnd() time.Time {
	return a.MeetingDate.Add(time.Duration(a.DurationMinutes) * time.Minute)
}
