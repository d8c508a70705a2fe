package services

import (
	"StarBoard/repositories"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// OtpRetention is how long expired OTP rows are kept before removal.
const OtpRetention = 24 * time.Hour

// CleanupService periodically removes expired sessions and stale OTP requests.
type CleanupService struct {
	Repos repositories.Manager
	Now   func() time.Time

	cron *cron.Cron
}

func NewCleanupService(repos repositories.Manager, loc *time.Location) *CleanupService {
	if loc == nil {
		loc = time.UTC
	}
	return &CleanupService{
		Repos: repos,
		Now:   time.Now,
		cron:  cron.New(cron.WithLocation(loc)),
	}
}

// RunOnce deletes expired rows and reports how many of each were removed.
func (s *CleanupService) RunOnce(ctx context.Context) (sessions, otps int64, err error) {
	now := s.Now().UTC()

	sessions, err = s.Repos.Sessions().DeleteExpired(ctx, now)
	if err != nil {
		return 0, 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	otps, err = s.Repos.Otps().DeleteExpiredBefore(ctx, now.Add(-OtpRetention))
	if err != nil {
		return sessions, 0, fmt.Errorf("delete expired otps: %w", err)
	}
	return sessions, otps, nil
}

// Schedule registers the cleanup job under a cron expression such as "@every 1h".
func (s *CleanupService) Schedule(expr string) (cron.EntryID, error) {
	return s.cron.AddFunc(expr, func() {
		sessions, otps, err := s.RunOnce(context.Background())
		if err != nil {
			slog.Error("Cleanup failed", "error", err)
			return
		}
		if sessions > 0 || otps > 0 {
			slog.Info("Cleanup finished", "sessions", sessions, "otps", otps)
		}
	})
}

func (s *CleanupService) Start() {
	s.cron.Start()
}

func (s *CleanupService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
