package config

type InternalConfig struct {
	App        App
	HRABackend HRABackend
	JWT        JWT
	Minio      AppMinio
	RateLimit  RateLimit
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
}

// HRABackend points at the persistence service that owns assessment records.
type HRABackend struct {
	BaseUrl string
}

type JWT struct {
	Secret string
}

type AppMinio struct {
	ReportBucketName string
}

// RateLimit configures the per-employee fixed-window limiter on the
// advance endpoint; the IP-based limiter is configured via App.MaxRequests.
type RateLimit struct {
	AdvanceWindowDurationSec int
	AdvanceMaxQuota          int
}
