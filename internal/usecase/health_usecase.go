package usecase

import (
	"context"
	"strconv"
)

// TransportStatus is the part of *email.EmailService the health check reads.
type TransportStatus interface {
	TransportName() string
	IsConfigured() bool
	Ready() bool
}

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	transport TransportStatus
}

func NewHealthUsecase(transport TransportStatus) HealthUsecase {
	return &healthUsecase{transport: transport}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	return map[string]string{
		"status":     "ok",
		"transport":  u.transport.TransportName(),
		"configured": strconv.FormatBool(u.transport.IsConfigured()),
		"ready":      strconv.FormatBool(u.transport.Ready()),
	}
}
