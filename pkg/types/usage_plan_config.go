package types

// UsagePlanConfig DTO descreve o estado desejado de um usage plan.
type UsagePlanConfig struct {
	Name        string
	Description string
	Throttle    *ThrottleConfig
	Quota       *QuotaConfig
	Stages      []StageConfig
	APIKeyIDs   []string
	Tags        map[string]string
}

// ThrottleConfig limita requisições por segundo (RateLimit) e rajada.
type ThrottleConfig struct {
	BurstLimit int32
	RateLimit  float64
}

// QuotaConfig limita o total de requisições por período (DAY, WEEK, MONTH).
type QuotaConfig struct {
	Limit  int32
	Offset int32
	Period string
}

// StageConfig associa um stage de uma API ao plano.
type StageConfig struct {
	APIID string
	Stage string
}
