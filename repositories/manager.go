package repositories

import "context"

// Manager vends repositories bound to one database handle. Inside Transaction
// the handle is the open transaction, so every repository obtained from tx
// commits or rolls back together.
type Manager interface {
	Parents() ParentRepository
	Children() ChildRepository
	Tasks() TaskRepository
	StarLogs() StarLogRepository
	Achievements() AchievementRepository
	Sessions() SessionRepository
	Otps() OtpRepository
	Templates() TemplateRepository
	Transaction(ctx context.Context, fn func(tx Manager) error) error
}
