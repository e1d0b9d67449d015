package usecase

import (
	"context"

	"sportloods-backend/internal/domain"
)

// Pinger is satisfied by the redis client's health check
type Pinger func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	mailer domain.Mailer
	redis  Pinger
}

// NewHealthUsecase reports mail and redis state; redis may be nil when not configured
func NewHealthUsecase(mailer domain.Mailer, redis Pinger) HealthUsecase {
	return &healthUsecase{mailer: mailer, redis: redis}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
		"mail":   "configured",
		"redis":  "disabled",
	}
	if u.mailer == nil || !u.mailer.IsConfigured() {
		status["mail"] = "not_configured"
		status["status"] = "degraded"
	}
	if u.redis != nil {
		if err := u.redis(ctx); err != nil {
			status["redis"] = "unreachable"
			status["status"] = "degraded"
		} else {
			status["redis"] = "ok"
		}
	}
	return status
}
