package repositories

import (
	"StarBoard/models"
	"context"
	"time"
)

type OtpRepository interface {
	Create(ctx context.Context, otp *models.OtpRequest) error
	// FindLatestUsable returns the most recently created unused OTP for the
	// phone that has not expired at now, or nil.
	FindLatestUsable(ctx context.Context, phone string, now time.Time) (*models.OtpRequest, error)
	IncrementAttempts(ctx context.Context, id string) error
	// MarkUsed claims an unused OTP for the parent. It reports false when the
	// OTP was already used.
	MarkUsed(ctx context.Context, id, parentID string) (bool, error)
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
