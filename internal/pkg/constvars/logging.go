package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingDataKey         = "data"
	LoggingAssessmentIDKey = "assessment_id"
	LoggingSubjectIDKey    = "subject_id"
	LoggingStepKey         = "step"
	LoggingSectionKey      = "section"
	LoggingMarkerKey       = "last_answered_question"
	LoggingRequestKey      = "request"
	LoggingResponseKey     = "response"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingRedisKey        = "redis_key"
	LoggingLockValueKey    = "lock_value"
	LoggingBucketKey       = "bucket"
	LoggingObjectNameKey   = "object_name"
	LoggingQueueKey        = "queue"
	LoggingActionKey       = "action"
	LoggingRecordCountKey  = "record_count"

	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)
