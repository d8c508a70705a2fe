package impl

import (
	"StarBoard/repositories"
	"context"

	"gorm.io/gorm"
)

// GormManager binds every repository to the same *gorm.DB, which is either the
// connection pool or an open transaction.
type GormManager struct {
	DB *gorm.DB
}

func NewManager(db *gorm.DB) repositories.Manager {
	return &GormManager{DB: db}
}

func (m *GormManager) Parents() repositories.ParentRepository { return NewParentRepository(m.DB) }

func (m *GormManager) Children() repositories.ChildRepository { return NewChildRepository(m.DB) }

func (m *GormManager) Tasks() repositories.TaskRepository { return NewTaskRepository(m.DB) }

func (m *GormManager) StarLogs() repositories.StarLogRepository { return NewStarLogRepository(m.DB) }

func (m *GormManager) Achievements() repositories.AchievementRepository {
	return NewAchievementRepository(m.DB)
}

func (m *GormManager) Sessions() repositories.SessionRepository { return NewSessionRepository(m.DB) }

func (m *GormManager) Otps() repositories.OtpRepository { return NewOtpRepository(m.DB) }

func (m *GormManager) Templates() repositories.TemplateRepository {
	return NewTemplateRepository(m.DB)
}

func (m *GormManager) Transaction(ctx context.Context, fn func(tx repositories.Manager) error) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormManager{DB: tx})
	})
}
