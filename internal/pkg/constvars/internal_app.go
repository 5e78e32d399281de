package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SUBJECT_KEY              ContextKey = "subject"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HRA_SVC_"
)

// Relation of the assessed subject to the portal account holder.
const (
	RelationSelf   = "self"
	RelationSpouse = "spouse"
	RelationChild  = "child"
	RelationParent = "parent"
)

// Server-side lifecycle state of an assessment record.
const (
	RecordActionResume = "Resume"
	RecordActionView   = "View"
)

// Redis key formats, keyed by assessment identifier.
const (
	RedisKeyDraftFormat       = "hra:draft:%s"
	RedisKeyAdvanceLockFormat = "hra:advance-lock:%s"
)
