package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	DevelopmentEnvironment = "development"
	ProductionEnvironment  = "production"
)

const (
	MongoCollectionAppointments = "appointments"
	MongoCollectionCredentials  = "credentials"
	MongoCollectionUsers        = "users"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

const (
	CredentialStatusValid   = "valid"
	CredentialStatusInvalid = "invalid"
)

const (
	// MeetingLinkClaimPrefix marks an appointment as being processed by a
	// running tick. A claimed link is non-empty, so the meet-link window
	// query excludes it until the real URI lands or the claim is released.
	MeetingLinkClaimPrefix = "pending:"

	SchedulerLeaderLockKey = "scheduler:leader"
)

const (
	TaskMeetLink = "meet_link"
	TaskReminder = "reminder"
)

const (
	ParticipantRolePatient = "patient"
	ParticipantRoleStaff   = "staff"
)
