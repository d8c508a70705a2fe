package services

import (
	"StarBoard/config"
	"StarBoard/models"
	"StarBoard/repositories"
	"StarBoard/repositories/impl"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestRepos(t *testing.T) repositories.Manager {
	t.Helper()
	db, err := config.OpenTestDatabase(t.Name())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return impl.NewManager(db)
}

// fixedClock is a settable time source.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock(t time.Time) *fixedClock {
	return &fixedClock{now: t}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func createParent(t *testing.T, repos repositories.Manager, phone string) *models.Parent {
	t.Helper()
	parent, err := repos.Parents().FindOrCreateByPhone(context.Background(), phone)
	require.NoError(t, err)
	return parent
}

func createChild(t *testing.T, repos repositories.Manager, parent *models.Parent, name string) *models.Child {
	t.Helper()
	child := models.Child{ParentID: parent.ID, Name: name, ColorTag: "#8ae0c1"}
	require.NoError(t, repos.Children().Create(context.Background(), &child))
	return &child
}

// seedDays inserts one non-bonus log of the given stars for each day key.
func seedDays(t *testing.T, repos repositories.Manager, childID string, stars int, days ...string) {
	t.Helper()
	for _, day := range days {
		log := models.StarLog{ChildID: childID, Stars: stars, Day: day}
		require.NoError(t, repos.StarLogs().Create(context.Background(), &log))
	}
}

// daysBefore returns the keys of the n days strictly before today, oldest first.
func daysBefore(today time.Time, n int) []string {
	keys := make([]string, 0, n)
	for i := n; i >= 1; i-- {
		keys = append(keys, today.AddDate(0, 0, -i).Format(models.DayLayout))
	}
	return keys
}
