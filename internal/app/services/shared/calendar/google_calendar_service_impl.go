package calendar

import (
	"context"
	"sync"

	"telecare-scheduler/internal/app/config"
	"telecare-scheduler/internal/app/contracts"
	"telecare-scheduler/internal/pkg/exceptions"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var (
	googleCalendarServiceInstance contracts.CalendarService
	onceGoogleCalendarService     sync.Once
)

type googleCalendarService struct {
	clientID     string
	clientSecret string
	calendarID   string
	limiter      *rate.Limiter
	Log          *zap.Logger
}

func NewGoogleCalendarService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.CalendarService {
	onceGoogleCalendarService.Do(func() {
		googleCfg := internalConfig.Google
		instance := &googleCalendarService{
			clientID:     googleCfg.ClientID,
			clientSecret: googleCfg.ClientSecret,
			calendarID:   googleCfg.CalendarID,
			limiter:      rate.NewLimiter(rate.Limit(googleCfg.RequestsPerSecond), googleCfg.Burst),
			Log:          logger,
		}
		googleCalendarServiceInstance = instance
	})
	return googleCalendarServiceInstance
}

// newService builds a per-call Calendar API client bound to one user's
// access token. Tokens differ per participant, so the client cannot be
// cached on the service.
func (s *googleCalendarService) newService(ctx context.Context, accessToken string) (*gcalendar.Service, error) {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	return gcalendar.NewService(ctx, option.WithTokenSource(tokenSource))
}

func (s *googleCalendarService) Probe(ctx context.Context, accessToken string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return exceptions.ErrCalendarProbe(err)
	}

	svc, err := s.newService(ctx, accessToken)
	if err != nil {
		return exceptions.ErrCalendarProbe(err)
	}

	_, err = svc.CalendarList.Get(s.calendarID).Fields("id").Context(ctx).Do()
	if err != nil {
		s.Log.Debug("googleCalendarService.Probe failed", zap.Error(err))
		return exceptions.ErrCalendarProbe(err)
	}
	return nil
}

func (s *googleCalendarService) CreateEvent(ctx context.Context, accessToken string, spec *contracts.CalendarEventSpec) (*contracts.CalendarEventResult, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrCalendarCreateEvent(err)
	}

	svc, err := s.newService(ctx, accessToken)
	if err != nil {
		return nil, exceptions.ErrCalendarCreateEvent(err)
	}

	event := buildEvent(spec)
	call := svc.Events.Insert(s.calendarID, event).Context(ctx)
	if spec.WithConference {
		call = call.ConferenceDataVersion(1)
	}

	created, err := call.Do()
	if err != nil {
		s.Log.Error("googleCalendarService.CreateEvent insert failed", zap.Error(err))
		return nil, exceptions.ErrCalendarCreateEvent(err)
	}

	result := &contracts.CalendarEventResult{
		EventID:  created.Id,
		HTMLLink: created.HtmlLink,
	}

	if spec.WithConference {
		uri := extractConferenceURI(created)
		if uri == "" {
			return nil, exceptions.ErrNoConferenceLink()
		}
		result.ConferenceURI = uri
	}

	return result, nil
}

func (s *googleCalendarService) RefreshAccessToken(ctx context.Context, refreshToken string) (*contracts.RefreshedToken, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	oauthConfig := &oauth2.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		Endpoint:     googleoauth.Endpoint,
	}
	tokenSource := oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	token, err := tokenSource.Token()
	if err != nil {
		s.Log.Warn("googleCalendarService.RefreshAccessToken failed", zap.Error(err))
		return nil, err
	}

	return &contracts.RefreshedToken{
		AccessToken: token.AccessToken,
		Expiry:      token.Expiry,
	}, nil
}
