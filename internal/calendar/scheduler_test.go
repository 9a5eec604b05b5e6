package calendar

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisor-calendar/backend/internal/storage"
	"github.com/advisor-calendar/backend/internal/storage/models"
)

type recordingSink struct {
	messages []string
}

func (s *recordingSink) BroadcastNotification(level, title, message string) {
	s.messages = append(s.messages, message)
}

func setupReminderRepo(t *testing.T) *storage.EventRepository {
	t.Helper()

	db, err := storage.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, storage.RunMigrations(db))

	return storage.NewEventRepository(db)
}

func TestReminderScheduler_RemindsOnce(t *testing.T) {
	repo := setupReminderRepo(t)
	ctx := context.Background()

	start := time.Now().UTC().Add(10 * time.Minute)
	require.NoError(t, repo.Create(ctx, &models.CalendarEvent{
		AdvisorID: "adv-1",
		Title:     "Client call",
		Start:     models.NewTimestamp(start),
		End:       models.NewTimestamp(start.Add(time.Hour)),
	}))

	sink := &recordingSink{}
	s := NewReminderScheduler(repo, sink, 5, 15)

	s.CheckUpcoming(ctx)
	require.Len(t, sink.messages, 1)
	assert.Contains(t, sink.messages[0], "Client call")

	// A second scan does not repeat the reminder.
	s.CheckUpcoming(ctx)
	assert.Len(t, sink.messages, 1)
}

func TestReminderScheduler_IgnoresEventsOutsideWindow(t *testing.T) {
	repo := setupReminderRepo(t)
	ctx := context.Background()

	start := time.Now().UTC().Add(3 * time.Hour)
	require.NoError(t, repo.Create(ctx, &models.CalendarEvent{
		AdvisorID: "adv-1",
		Title:     "Far away",
		Start:     models.NewTimestamp(start),
		End:       models.NewTimestamp(start.Add(time.Hour)),
	}))

	sink := &recordingSink{}
	s := NewReminderScheduler(repo, sink, 5, 15)

	s.CheckUpcoming(ctx)
	assert.Empty(t, sink.messages)
}
