package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisor-calendar/backend/internal/storage/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, RunMigrations(db))
	return db
}

func newTestEvent(advisorID, title string, start time.Time) *models.CalendarEvent {
	return &models.CalendarEvent{
		AdvisorID: advisorID,
		Title:     title,
		Start:     models.NewTimestamp(start),
		End:       models.NewTimestamp(start.Add(time.Hour)),
		Color:     "#1890FF",
		Category:  "meeting",
	}
}

func TestEventRepository_CreateAndGet(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	ctx := context.Background()

	ev := newTestEvent("adv-1", "Quarterly review", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	ev.Client = &models.EventClient{ID: "cl-1", Name: "Pat Doe", Email: "pat@example.com"}

	require.NoError(t, repo.Create(ctx, ev))
	assert.NotEmpty(t, ev.ID, "id assigned when the client did not supply one")
	assert.Equal(t, models.EventStatusActive, ev.Status)

	got, err := repo.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Quarterly review", got.Title)
	require.NotNil(t, got.Client)
	assert.Equal(t, "pat@example.com", got.Client.Email)
	assert.True(t, got.Start.Equal(ev.Start.Time))
}

func TestEventRepository_Create_KeepsClientGeneratedID(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	ctx := context.Background()

	ev := newTestEvent("adv-1", "Pre-assigned", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	ev.ID = "11111111-2222-3333-4444-555555555555"

	require.NoError(t, repo.Create(ctx, ev))

	got, err := repo.GetByID(ctx, "11111111-2222-3333-4444-555555555555")
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestEventRepository_GetByID_Missing(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))

	got, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEventRepository_ListByAdvisors(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	first := newTestEvent("adv-1", "First", base)
	second := newTestEvent("adv-2", "Second", base.AddDate(0, 0, 1))
	third := newTestEvent("adv-3", "Third", base.AddDate(0, 0, 2))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, third))

	own, err := repo.ListByAdvisors(ctx, []string{"adv-1"})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "First", own[0].Title)

	aggregated, err := repo.ListByAdvisors(ctx, []string{"adv-1", "adv-2"})
	require.NoError(t, err)
	require.Len(t, aggregated, 2)
	assert.Equal(t, "First", aggregated[0].Title, "ordered by start time")
	assert.Equal(t, "Second", aggregated[1].Title)

	none, err := repo.ListByAdvisors(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEventRepository_Update_Partial(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	ctx := context.Background()

	ev := newTestEvent("adv-1", "Original", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, ev))

	title := "Renamed"
	updated, err := repo.Update(ctx, ev.ID, models.EventPatch{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "meeting", updated.Category, "untouched fields preserved")

	missing, err := repo.Update(ctx, "nope", models.EventPatch{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEventRepository_SoftDelete(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	ctx := context.Background()

	ev := newTestEvent("adv-1", "Doomed", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, ev))

	require.NoError(t, repo.SetStatus(ctx, ev.ID, models.EventStatusInactive))

	listed, err := repo.ListByAdvisors(ctx, []string{"adv-1"})
	require.NoError(t, err)
	assert.Empty(t, listed, "inactive events drop out of listings")

	got, err := repo.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "row is retained")
	assert.Equal(t, models.EventStatusInactive, got.Status)

	assert.Error(t, repo.SetStatus(ctx, "nope", models.EventStatusInactive))
}

func TestEventRepository_ListUpcoming(t *testing.T) {
	repo := NewEventRepository(setupTestDB(t))
	ctx := context.Background()

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	soon := newTestEvent("adv-1", "Soon", now.Add(10*time.Minute))
	later := newTestEvent("adv-1", "Later", now.Add(3*time.Hour))
	require.NoError(t, repo.Create(ctx, soon))
	require.NoError(t, repo.Create(ctx, later))

	upcoming, err := repo.ListUpcoming(ctx, models.NewTimestamp(now), models.NewTimestamp(now.Add(15*time.Minute)))
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Soon", upcoming[0].Title)
}
