package calendar

import (
	"testing"
	"time"

	"telecare-scheduler/internal/app/contracts"

	"github.com/stretchr/testify/assert"
	gcalendar "google.golang.org/api/calendar/v3"
)

func TestBuildEvent_Conference(t *testing.T) {
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	spec := &contracts.CalendarEventSpec{
		Summary:        "Consultation",
		Description:    "Online consultation",
		Start:          start,
		End:            start.Add(30 * time.Minute),
		Timezone:       "Asia/Jakarta",
		AttendeeEmails: []string{"patient@mail.example", "doctor@clinic.example"},
		WithConference: true,
	}

	event := buildEvent(spec)

	assert.Equal(t, "Consultation", event.Summary)
	assert.Equal(t, start.Format(time.RFC3339), event.Start.DateTime)
	assert.Equal(t, "Asia/Jakarta", event.Start.TimeZone)
	assert.Len(t, event.Attendees, 2)
	if assert.NotNil(t, event.ConferenceData) {
		assert.NotEmpty(t, event.ConferenceData.CreateRequest.RequestId)
		assert.Equal(t, "hangoutsMeet", event.ConferenceData.CreateRequest.ConferenceSolutionKey.Type)
	}
	assert.Nil(t, event.Reminders)
}

func TestBuildEvent_ImmediateReminders(t *testing.T) {
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	spec := &contracts.CalendarEventSpec{
		Summary:            "Upcoming appointment",
		Start:              start,
		End:                start.Add(15 * time.Minute),
		Timezone:           "Asia/Jakarta",
		ImmediateReminders: true,
	}

	event := buildEvent(spec)

	assert.Nil(t, event.ConferenceData)
	if assert.NotNil(t, event.Reminders) {
		assert.False(t, event.Reminders.UseDefault)
		// Zero-minute overrides are only serialized when forced.
		assert.Contains(t, event.Reminders.ForceSendFields, "UseDefault")
		assert.Len(t, event.Reminders.Overrides, 2)
		for _, override := range event.Reminders.Overrides {
			assert.Equal(t, int64(0), override.Minutes)
			assert.Contains(t, override.ForceSendFields, "Minutes")
		}
	}
}

func TestExtractConferenceURI(t *testing.T) {
	t.Run("Video Entry Point", func(t *testing.T) {
		event := &gcalendar.Event{
			ConferenceData: &gcalendar.ConferenceData{
				EntryPoints: []*gcalendar.EntryPoint{
					{EntryPointType: "phone", Uri: "tel:+62-21-5551234"},
					{EntryPointType: "video", Uri: "https://meet.google.com/abc-defg-hij"},
				},
			},
		}
		assert.Equal(t, "https://meet.google.com/abc-defg-hij", extractConferenceURI(event))
	})

	t.Run("No Conference Data", func(t *testing.T) {
		assert.Empty(t, extractConferenceURI(&gcalendar.Event{}))
	})

	t.Run("No Video Entry Point", func(t *testing.T) {
		event := &gcalendar.Event{
			ConferenceData: &gcalendar.ConferenceData{
				EntryPoints: []*gcalendar.EntryPoint{
					{EntryPointType: "phone", Uri: "tel:+62-21-5551234"},
				},
			},
		}
		assert.Empty(t, extractConferenceURI(event))
	})
}
