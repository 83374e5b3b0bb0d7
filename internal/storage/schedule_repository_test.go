package storage

import (
	"context"
	"testing"
	"time"

	"github.com/conference-planner/backend/internal/schedule"
	"github.com/conference-planner/backend/internal/storage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepo(t *testing.T) *ScheduleRepository {
	t.Helper()
	db, err := NewMemoryDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, RunMigrations(db))
	return NewScheduleRepository(db)
}

func storedSchedule() *models.Schedule {
	date := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)
	return &models.Schedule{
		Name:   "ICFP 2025",
		Source: "https://example.com/program.html",
		Data: []schedule.Day{{
			Label: "Sunday 10th August",
			DayID: "sunday-10th-august",
			Date:  &date,
			TimeSlots: []schedule.TimeSlot{{
				Time: "09:00",
				Events: []schedule.Event{{
					ID:    "e1",
					Track: "Track 1",
					Title: "Opening Session",
					Talks: []schedule.Talk{
						{ID: "t1", Title: "Welcome Keynote", Time: "09:00 – 09:45", EventID: "e1", DayID: "sunday-10th-august"},
					},
				}},
			}},
			Tracks:  []string{"Track 1"},
			Periods: []string{"Morning"},
		}},
	}
}

func TestCreateAndGetSchedule(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	s := storedSchedule()
	require.NoError(t, repo.Create(ctx, s))
	require.NotEmpty(t, s.ID)

	loaded, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "ICFP 2025", loaded.Name)
	require.Len(t, loaded.Data, 1)
	assert.Equal(t, "sunday-10th-august", loaded.Data[0].DayID)

	// Dates round-trip through their JSON string form.
	require.NotNil(t, loaded.Data[0].Date)
	assert.True(t, s.Data[0].Date.Equal(*loaded.Data[0].Date))
	assert.Equal(t, []string{}, loaded.Selections)
}

func TestGetScheduleMissing(t *testing.T) {
	repo := testRepo(t)
	loaded, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestUpdateSelections(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	s := storedSchedule()
	require.NoError(t, repo.Create(ctx, s))
	require.NoError(t, repo.UpdateSelections(ctx, s.ID, []string{"t1"}))

	loaded, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, loaded.Selections)

	assert.Error(t, repo.UpdateSelections(ctx, "missing", []string{"t1"}))
}

func TestActiveScheduleLifecycle(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	active, err := repo.ActiveScheduleID(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	s := storedSchedule()
	require.NoError(t, repo.Create(ctx, s))
	require.NoError(t, repo.SetActiveScheduleID(ctx, s.ID))

	active, err = repo.ActiveScheduleID(ctx)
	require.NoError(t, err)
	assert.Equal(t, s.ID, active)

	// Deleting the active schedule clears the marker.
	require.NoError(t, repo.Delete(ctx, s.ID))
	active, err = repo.ActiveScheduleID(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestListSummaries(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	first := storedSchedule()
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.UpdateSelections(ctx, first.ID, []string{"t1"}))
	require.NoError(t, repo.SetActiveScheduleID(ctx, first.ID))

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].Days)
	assert.Equal(t, 1, summaries[0].Selections)
	assert.True(t, summaries[0].Active)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
