package services

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskpilot/backend/internal/core/ports"
	"github.com/taskpilot/backend/internal/domain"
	"github.com/taskpilot/backend/internal/infrastructure/db"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestTaskService(t *testing.T) *TaskService {
	t.Helper()

	database, err := gorm.Open(gormlite.Open(filepath.Join(t.TempDir(), "tasks.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&domain.Task{}))

	return NewTaskService(TaskServiceConfig{
		Repository: db.NewTaskRepository(database, logger.NewNop()),
		Logger:     logger.NewNop(),
	})
}

func TestTaskService_CreateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Should round-trip a created task through get", func(t *testing.T) {
		svc := newTestTaskService(t)

		created, err := svc.CreateTask(ctx, ports.CreateTaskInput{Title: "Buy milk", IsCompleted: true})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())

		got, err := svc.GetTaskByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Buy milk", got.Title)
		assert.True(t, got.IsCompleted)
	})

	t.Run("Should default isCompleted to false", func(t *testing.T) {
		svc := newTestTaskService(t)

		created, err := svc.CreateTask(ctx, ports.CreateTaskInput{Title: "Buy milk"})

		require.NoError(t, err)
		assert.False(t, created.IsCompleted)
	})

	t.Run("Should trim the title before storing", func(t *testing.T) {
		svc := newTestTaskService(t)

		created, err := svc.CreateTask(ctx, ports.CreateTaskInput{Title: "  Wash car  "})

		require.NoError(t, err)
		assert.Equal(t, "Wash car", created.Title)
	})

	t.Run("Should reject blank titles", func(t *testing.T) {
		svc := newTestTaskService(t)

		_, err := svc.CreateTask(ctx, ports.CreateTaskInput{Title: "   "})

		assert.ErrorIs(t, err, ErrTaskInvalidInput)
	})

	t.Run("Should reject titles over 200 characters", func(t *testing.T) {
		svc := newTestTaskService(t)

		_, err := svc.CreateTask(ctx, ports.CreateTaskInput{Title: strings.Repeat("x", 201)})

		assert.ErrorIs(t, err, ErrTaskTitleTooLong)
	})

	t.Run("Should accept a title of exactly 200 characters", func(t *testing.T) {
		svc := newTestTaskService(t)

		created, err := svc.CreateTask(ctx, ports.CreateTaskInput{Title: strings.Repeat("x", 200)})

		require.NoError(t, err)
		assert.Len(t, created.Title, 200)
	})
}

func TestTaskService_UpdateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Should apply partial updates", func(t *testing.T) {
		svc := newTestTaskService(t)
		created, err := svc.CreateTask(ctx, ports.CreateTaskInput{Title: "Original"})
		require.NoError(t, err)

		done := true
		updated, err := svc.UpdateTask(ctx, created.ID, ports.UpdateTaskInput{IsCompleted: &done})
		require.NoError(t, err)
		assert.Equal(t, "Original", updated.Title)
		assert.True(t, updated.IsCompleted)

		title := "Renamed"
		updated, err = svc.UpdateTask(ctx, created.ID, ports.UpdateTaskInput{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.True(t, updated.IsCompleted)
	})

	t.Run("Should keep the id and createdAt immutable", func(t *testing.T) {
		svc := newTestTaskService(t)
		created, err := svc.CreateTask(ctx, ports.CreateTaskInput{Title: "Original"})
		require.NoError(t, err)

		title := "Renamed"
		updated, err := svc.UpdateTask(ctx, created.ID, ports.UpdateTaskInput{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Second)
	})

	t.Run("Should reject an empty updated title", func(t *testing.T) {
		svc := newTestTaskService(t)
		created, err := svc.CreateTask(ctx, ports.CreateTaskInput{Title: "Original"})
		require.NoError(t, err)

		blank := "  "
		_, err = svc.UpdateTask(ctx, created.ID, ports.UpdateTaskInput{Title: &blank})

		assert.ErrorIs(t, err, ErrTaskInvalidInput)
	})

	t.Run("Should return NotFound for an unknown id", func(t *testing.T) {
		svc := newTestTaskService(t)

		done := true
		_, err := svc.UpdateTask(ctx, "00000000-0000-0000-0000-000000000000", ports.UpdateTaskInput{IsCompleted: &done})

		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Should make a deleted task unreachable", func(t *testing.T) {
		svc := newTestTaskService(t)
		created, err := svc.CreateTask(ctx, ports.CreateTaskInput{Title: "Ephemeral"})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteTask(ctx, created.ID))

		_, err = svc.GetTaskByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("Should return NotFound on the second delete", func(t *testing.T) {
		svc := newTestTaskService(t)
		created, err := svc.CreateTask(ctx, ports.CreateTaskInput{Title: "Ephemeral"})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteTask(ctx, created.ID))
		assert.ErrorIs(t, svc.DeleteTask(ctx, created.ID), ErrTaskNotFound)
	})

	t.Run("Should return NotFound for an unknown id", func(t *testing.T) {
		svc := newTestTaskService(t)

		assert.ErrorIs(t, svc.DeleteTask(ctx, "unknown"), ErrTaskNotFound)
	})
}
