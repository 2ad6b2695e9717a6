package contracts

import (
	"context"
	"time"

	"telecare-scheduler/internal/app/models"
)

type AppointmentRepository interface {
	// FindDueForMeetLink returns online, visible, scheduled appointments
	// inside [from, to] that do not carry a meeting link yet.
	FindDueForMeetLink(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	// FindDueForReminder returns visible scheduled/confirmed appointments
	// inside [from, to] whose reminder has not been sent.
	FindDueForReminder(ctx context.Context, from, to time.Time) ([]models.Appointment, error)

	// ClaimMeetingLink conditionally sets the meeting link to a claim
	// sentinel if it is still empty. Returns false when another tick got
	// there first.
	ClaimMeetingLink(ctx context.Context, appointmentID, sentinel string) (bool, error)
	// SetMeetingLink replaces the claim sentinel with the real link.
	SetMeetingLink(ctx context.Context, appointmentID, sentinel, link string) error
	// ReleaseMeetingLinkClaim clears the sentinel so a later tick retries.
	ReleaseMeetingLinkClaim(ctx context.Context, appointmentID, sentinel string) error

	// ClaimReminder conditionally marks the reminder as sent. Returns
	// false when another tick got there first.
	ClaimReminder(ctx context.Context, appointmentID string) (bool, error)
	ReleaseReminderClaim(ctx context.Context, appointmentID string) error
}
