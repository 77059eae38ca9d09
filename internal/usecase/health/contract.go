package health

import "context"

// TelemetryPinger checks telemetry store availability.
type TelemetryPinger interface {
	Ping(ctx context.Context) error
}

// EncoderChecker checks query-encoder availability.
type EncoderChecker interface {
	HealthCheck(ctx context.Context) error
}
