package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"telecare-scheduler/internal/app/config"
	"telecare-scheduler/internal/app/contracts"
	"telecare-scheduler/internal/app/models"
	"telecare-scheduler/internal/pkg/constvars"
	"telecare-scheduler/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type schedulerUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	TokenResolver         contracts.TokenResolver
	CalendarService       contracts.CalendarService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewSchedulerUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	tokenResolver contracts.TokenResolver,
	calendarService contracts.CalendarService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SchedulerUsecase {
	return &schedulerUsecase{
		AppointmentRepository: appointmentRepository,
		UserRepository:        userRepository,
		TokenResolver:         tokenResolver,
		CalendarService:       calendarService,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

// itemOutcome is the fold unit for one appointment (or one participant of
// one appointment in the reminder task).
type itemOutcome struct {
	succeeded int
	failed    int
	skipped   int
	failures  []models.TaskFailure
}

func failedOutcome(appointmentID, userID string, err error) itemOutcome {
	return itemOutcome{
		failed: 1,
		failures: []models.TaskFailure{{
			AppointmentID: appointmentID,
			UserID:        userID,
			Reason:        exceptions.ReasonOf(err),
			Detail:        err.Error(),
		}},
	}
}

func (uc *schedulerUsecase) RunTick(ctx context.Context) *models.TickResult {
	now := time.Now()
	timeout := time.Duration(uc.InternalConfig.Scheduler.TickTimeoutInSeconds) * time.Second
	tickCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	uc.Log.Info("schedulerUsecase.RunTick started", zap.Time("now", now))

	result := &models.TickResult{StartedAt: now}

	// The two sub-tasks are independent; each catches its own errors so
	// one cannot abort the other.
	g := new(errgroup.Group)
	g.Go(func() error {
		result.MeetLink = uc.runMeetLinkTask(tickCtx, now)
		return nil
	})
	g.Go(func() error {
		result.Reminder = uc.runReminderTask(tickCtx, now)
		return nil
	})
	g.Wait()

	result.ExecutionTimeMS = time.Since(now).Milliseconds()

	uc.Log.Info("schedulerUsecase.RunTick completed",
		zap.Int64(constvars.LoggingDurationKey, result.ExecutionTimeMS),
		zap.Any("meet_link", result.MeetLink),
		zap.Any("reminder", result.Reminder),
	)
	return result
}

func (uc *schedulerUsecase) runMeetLinkTask(ctx context.Context, now time.Time) models.TaskReport {
	report := models.TaskReport{Task: constvars.TaskMeetLink}

	span := time.Duration(uc.InternalConfig.Scheduler.MeetLinkWindowInMinutes) * time.Minute
	from, to := MeetLinkWindow(now, span)

	appointments, err := uc.AppointmentRepository.FindDueForMeetLink(ctx, from, to)
	if err != nil {
		uc.Log.Error("schedulerUsecase.runMeetLinkTask window query failed",
			zap.Time(constvars.LoggingWindowFromKey, from),
			zap.Time(constvars.LoggingWindowToKey, to),
			zap.Error(err),
		)
		report.Error = err.Error()
		return report
	}
	report.Found = len(appointments)

	uc.forEachAppointment(ctx, appointments, &report, uc.processMeetLink)
	return report
}

func (uc *schedulerUsecase) runReminderTask(ctx context.Context, now time.Time) models.TaskReport {
	report := models.TaskReport{Task: constvars.TaskReminder}

	lead := time.Duration(uc.InternalConfig.Scheduler.ReminderLeadInHours) * time.Hour
	tolerance := time.Duration(uc.InternalConfig.Scheduler.ReminderToleranceInMinutes) * time.Minute
	from, to := ReminderWindow(now, lead, tolerance)

	appointments, err := uc.AppointmentRepository.FindDueForReminder(ctx, from, to)
	if err != nil {
		uc.Log.Error("schedulerUsecase.runReminderTask window query failed",
			zap.Time(constvars.LoggingWindowFromKey, from),
			zap.Time(constvars.LoggingWindowToKey, to),
			zap.Error(err),
		)
		report.Error = err.Error()
		return report
	}
	report.Found = len(appointments)

	uc.forEachAppointment(ctx, appointments, &report, uc.processReminder)
	return report
}

// forEachAppointment fans out per-appointment work with a bounded worker
// count and folds outcomes into the report. Per-item errors never escape.
func (uc *schedulerUsecase) forEachAppointment(
	ctx context.Context,
	appointments []models.Appointment,
	report *models.TaskReport,
	process func(ctx context.Context, appointment *models.Appointment) itemOutcome,
) {
	maxConcurrent := uc.InternalConfig.Scheduler.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(maxConcurrent)

	for i := range appointments {
		appointment := appointments[i]
		g.Go(func() error {
			outcome := process(ctx, &appointment)
			mu.Lock()
			report.Succeeded += outcome.succeeded
			report.Failed += outcome.failed
			report.Skipped += outcome.skipped
			report.Failures = append(report.Failures, outcome.failures...)
			mu.Unlock()
			return nil
		})
	}
	g.Wait()
}

func (uc *schedulerUsecase) processMeetLink(ctx context.Context, appointment *models.Appointment) itemOutcome {
	appointmentID := appointment.ID.Hex()
	sentinel := constvars.MeetingLinkClaimPrefix + uuid.NewString()

	claimed, err := uc.AppointmentRepository.ClaimMeetingLink(ctx, appointmentID, sentinel)
	if err != nil {
		return failedOutcome(appointmentID, "", err)
	}
	if !claimed {
		uc.Log.Info("schedulerUsecase.processMeetLink claim not acquired, skipping",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return itemOutcome{skipped: 1}
	}

	link, err := uc.createConferenceLink(ctx, appointment)
	if err != nil {
		uc.releaseMeetingLinkClaim(ctx, appointmentID, sentinel)
		uc.Log.Warn("schedulerUsecase.processMeetLink conference creation failed",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.String(constvars.LoggingReasonKey, exceptions.ReasonOf(err)),
			zap.Error(err),
		)
		return failedOutcome(appointmentID, appointment.StaffID, err)
	}

	if err := uc.AppointmentRepository.SetMeetingLink(ctx, appointmentID, sentinel, link); err != nil {
		// The claim sentinel stays in place, which keeps the appointment
		// out of future windows: the conference exists but the stored
		// link is lost until repaired out-of-band. Better than creating
		// a duplicate conference on the next tick.
		uc.Log.Error("schedulerUsecase.processMeetLink failed to persist meeting link",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return failedOutcome(appointmentID, "", err)
	}

	uc.Log.Info("schedulerUsecase.processMeetLink conference link created",
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return itemOutcome{succeeded: 1}
}

// createConferenceLink resolves both participants and creates the meeting
// event with conference data on the staff member's calendar.
func (uc *schedulerUsecase) createConferenceLink(ctx context.Context, appointment *models.Appointment) (string, error) {
	token, err := uc.TokenResolver.Resolve(ctx, appointment.StaffID)
	if err != nil {
		return "", err
	}

	staff, err := uc.UserRepository.FindByID(ctx, appointment.StaffID)
	if err != nil {
		return "", err
	}
	patient, err := uc.UserRepository.FindByID(ctx, appointment.PatientID)
	if err != nil {
		return "", err
	}

	spec := &contracts.CalendarEventSpec{
		Summary:        fmt.Sprintf("Telecare consultation: %s with %s", patient.Fullname, staff.Fullname),
		Description:    "Online consultation. Join using the attached video link.",
		Start:          appointment.MeetingDate,
		End:            appointment.MeetingEnd(),
		Timezone:       uc.InternalConfig.App.Timezone,
		AttendeeEmails: []string{staff.Email, patient.Email},
		WithConference: true,
	}

	result, err := uc.CalendarService.CreateEvent(ctx, token, spec)
	if err != nil {
		return "", err
	}
	return result.ConferenceURI, nil
}

func (uc *schedulerUsecase) processReminder(ctx context.Context, appointment *models.Appointment) itemOutcome {
	appointmentID := appointment.ID.Hex()

	claimed, err := uc.AppointmentRepository.ClaimReminder(ctx, appointmentID)
	if err != nil {
		return failedOutcome(appointmentID, "", err)
	}
	if !claimed {
		uc.Log.Info("schedulerUsecase.processReminder claim not acquired, skipping",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return itemOutcome{skipped: 1}
	}

	participants := []struct {
		userID string
		role   string
	}{
		{appointment.PatientID, constvars.ParticipantRolePatient},
		{appointment.StaffID, constvars.ParticipantRoleStaff},
	}

	var outcome itemOutcome
	for _, participant := range participants {
		if err := uc.createReminder(ctx, appointment, participant.userID, participant.role); err != nil {
			uc.Log.Warn("schedulerUsecase.processReminder participant reminder failed",
				zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
				zap.String(constvars.LoggingUserIDKey, participant.userID),
				zap.String(constvars.LoggingReasonKey, exceptions.ReasonOf(err)),
				zap.Error(err),
			)
			outcome.failed++
			outcome.failures = append(outcome.failures, models.TaskFailure{
				AppointmentID: appointmentID,
				UserID:        participant.userID,
				Reason:        exceptions.ReasonOf(err),
				Detail:        err.Error(),
			})
			continue
		}
		outcome.succeeded++
	}

	if outcome.succeeded == 0 {
		// No reminder landed for anyone; release the sent-marker so a
		// later tick inside the window can retry.
		if err := uc.AppointmentRepository.ReleaseReminderClaim(ctx, appointmentID); err != nil {
			uc.Log.Error("schedulerUsecase.processReminder failed to release reminder claim",
				zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
				zap.Error(err),
			)
		}
	}
	return outcome
}

func (uc *schedulerUsecase) createReminder(ctx context.Context, appointment *models.Appointment, userID, role string) error {
	token, err := uc.TokenResolver.Resolve(ctx, userID)
	if err != nil {
		return err
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	lead := time.Duration(uc.InternalConfig.Scheduler.ReminderLeadInHours) * time.Hour
	start := appointment.MeetingDate.Add(-lead)

	spec := &contracts.CalendarEventSpec{
		Summary: "Upcoming appointment reminder",
		Description: fmt.Sprintf("You have an appointment scheduled for %s.",
			appointment.MeetingDate.Format(time.RFC1123)),
		Start:              start,
		End:                start.Add(15 * time.Minute),
		Timezone:           uc.InternalConfig.App.Timezone,
		AttendeeEmails:     []string{user.Email},
		ImmediateReminders: true,
	}

	_, err = uc.CalendarService.CreateEvent(ctx, token, spec)
	return err
}

func (uc *schedulerUsecase) releaseMeetingLinkClaim(ctx context.Context, appointmentID, sentinel string) {
	if err := uc.AppointmentRepository.ReleaseMeetingLinkClaim(ctx, appointmentID, sentinel); err != nil {
		uc.Log.Error("schedulerUsecase failed to release meeting link claim",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}
}
