package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"min":              "must be at least %s",
	"max":              "must be at most %s",
	"numeric":          "must be a number",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"lt":               "must be less than %s",
	"lte":              "must be less than or equal to %s",
	"yes_no":           "must be either 'yes' or 'no'",
	"relation_type":    "must be one of self, spouse, child or parent",
	"required_if":      "is required when %s is %s",
	"required_without": "is required when %s is not present",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":              true,
	"max":              true,
	"gt":               true,
	"gte":              true,
	"lt":               true,
	"lte":              true,
	"oneof":            true,
	"required_if":      true,
	"required_without": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientSectionNotSaved               = "we could not save this section, please try again"
	ErrClientAssessmentNotStarted          = "please complete the general details section first"
	ErrClientStepOutOfOrder                = "please complete the sections in order"
	ErrClientAdvanceInProgress             = "the previous save is still in progress, please wait"
	ErrClientCannotResume                  = "could not resume your assessment, please start again"
	ErrClientAssessmentNotFound            = "assessment not found"
	ErrClientReportNotReady                = "your report could not be prepared"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevDecodeResponse         = "failed to decode upstream response"
	ErrDevUnexpectedStatusCode   = "unexpected upstream status code"
	ErrDevServerDeadlineExceeded = "deadline exceeded"

	// Sequencer
	ErrDevAssessmentIDMissing = "assessment identifier not established yet"
	ErrDevStepOutOfOrder      = "submitted step does not match current step"
	ErrDevAdvanceLocked       = "another advance is already in flight for this assessment"
	ErrDevDraftNotFound       = "assessment draft not found in cache"

	// Upstream persistence
	ErrDevSectionCommitFailed = "failed to commit section to persistence service"
	ErrDevSectionFetchFailed  = "failed to fetch section from persistence service"
	ErrDevMarkerUpdateFailed  = "failed to advance progress marker"
	ErrDevMarkerFetchFailed   = "failed to fetch progress marker"
	ErrDevRecordListFailed    = "failed to list assessment records"

	// Auth
	ErrDevAuthTokenMissing          = "authorization token missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"

	// Rate limiting
	ErrDevTooManyRequests = "fixed window quota exceeded"

	// Redis
	ErrDevRedisSet    = "failed to set redis key"
	ErrDevRedisGet    = "failed to get redis key"
	ErrDevRedisDelete = "failed to delete redis key"
	ErrDevRedisSetNX  = "failed to set redis key with NX"
	ErrDevRedisIncr   = "failed to increment redis key"
	ErrDevRedisUnlock = "failed to release redis lock"

	// Storage
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"

	// Messaging
	ErrDevPublishMessage = "failed to publish message to queue"

	// Renderer
	ErrDevRenderReport = "failed to render report document"
)
