package f

type HealthCheckResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Environment string `json:"environment"`
}

type HealthCheck struct {
	service     string
	environment string
}

// NewHealthCheck builds the liveness payload. It performs no external calls
// so the endpoint stays usable as a readiness probe whatever the secret
// store is doing.
func NewHealthCheck(service string, environment string) HealthCheck {
	return HealthCheck{
		service:     service,
		environment: environment,
	}
}

func (b HealthCheck) Build() HealthCheckResponse {
	return HealthCheckResponse{
		Status:      "healthy",
		Service:     b.service,
		Environment: b.environment,
	}
}
