package contracts

import (
	"context"
	"time"
)

type CalendarEventSpec struct {
	Summary        string
	Description    string
	Start          time.Time
	End            time.Time
	Timezone       string
	AttendeeEmails []string
	// WithConference requests video-conference data on the event; the
	// resulting entry-point URI is returned in CalendarEventResult.
	WithConference bool
	// ImmediateReminders overrides the calendar defaults with popup and
	// email alerts firing at event start.
	ImmediateReminders bool
}

type CalendarEventResult struct {
	EventID       string
	ConferenceURI string
	HTMLLink      string
}

type RefreshedToken struct {
	AccessToken string
	Expiry      time.Time
}

type CalendarService interface {
	// Probe issues a cheap read to check whether the access token is
	// still usable.
	Probe(ctx context.Context, accessToken string) error
	CreateEvent(ctx context.Context, accessToken string, spec *CalendarEventSpec) (*CalendarEventResult, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*RefreshedToken, error)
}
