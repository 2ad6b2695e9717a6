package calendar

import (
	"time"

	"telecare-scheduler/internal/app/contracts"

	"github.com/google/uuid"
	gcalendar "google.golang.org/api/calendar/v3"
)

const conferenceSolutionType = "hangoutsMeet"

func buildEvent(spec *contracts.CalendarEventSpec) *gcalendar.Event {
	event := &gcalendar.Event{
		Summary:     spec.Summary,
		Description: spec.Description,
		Start: &gcalendar.EventDateTime{
			DateTime: spec.Start.Format(time.RFC3339),
			TimeZone: spec.Timezone,
		},
		End: &gcalendar.EventDateTime{
			DateTime: spec.End.Format(time.RFC3339),
			TimeZone: spec.Timezone,
		},
	}

	for _, email := range spec.AttendeeEmails {
		event.Attendees = append(event.Attendees, &gcalendar.EventAttendee{Email: email})
	}

	if spec.WithConference {
		event.ConferenceData = &gcalendar.ConferenceData{
			CreateRequest: &gcalendar.CreateConferenceRequest{
				RequestId: uuid.NewString(),
				ConferenceSolutionKey: &gcalendar.ConferenceSolutionKey{
					Type: conferenceSolutionType,
				},
			},
		}
	}

	if spec.ImmediateReminders {
		event.Reminders = &gcalendar.EventReminders{
			UseDefault: false,
			Overrides: []*gcalendar.EventReminder{
				{Method: "popup", Minutes: 0, ForceSendFields: []string{"Minutes"}},
				{Method: "email", Minutes: 0, ForceSendFields: []string{"Minutes"}},
			},
			ForceSendFields: []string{"UseDefault"},
		}
	}

	return event
}

func extractConferenceURI(event *gcalendar.Event) string {
	if event.ConferenceData == nil {
		return ""
	}
	for _, entryPoint := range event.ConferenceData.EntryPoints {
		if entryPoint.EntryPointType == "video" && entryPoint.Uri != "" {
			return entryPoint.Uri
		}
	}
	return ""
}
