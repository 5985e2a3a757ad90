package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ==================== ENUMS ====================

type Provider string

const (
	ProviderOpenRouter  Provider = "openrouter"
	ProviderHuggingFace Provider = "huggingface"
)

func (p Provider) Valid() bool {
	return p == ProviderOpenRouter || p == ProviderHuggingFace
}

// ==================== MODELS ====================

// Task is a persisted to-do item. The ID is assigned once at creation and
// never changes; CreatedAt is immutable after insert.
type Task struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	IsCompleted bool      `json:"isCompleted" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
}

func (Task) TableName() string {
	return "tasks"
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// TaskCandidate is a task extracted from AI output that has not been
// persisted yet. Discarded after the persistence attempt.
type TaskCandidate struct {
	Title       string
	IsCompleted bool
}
