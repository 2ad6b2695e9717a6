package constvars

// Failure reason codes folded into a TickResult. These go to logs and the
// tick summary; they are never exposed per-record to the trigger caller.
const (
	ReasonNoCredential       = "NO_CREDENTIAL"
	ReasonTokenRefreshFailed = "TOKEN_REFRESH_FAILED"
	ReasonCalendarError      = "CALENDAR_ERROR"
	ReasonNoConferenceLink   = "NO_CONFERENCE_LINK"
	ReasonPersistFailed      = "PERSIST_FAILED"
	ReasonQueryFailed        = "QUERY_FAILED"
	ReasonLookupFailed       = "LOOKUP_FAILED"
	ReasonConfigMissing      = "CONFIG_MISSING"
	ReasonUnknown            = "UNKNOWN"
)
