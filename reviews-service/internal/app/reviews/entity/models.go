package entity

import (
	"time"
)

// Backend - хранилище, через которое обслуживается запрос
type Backend string

const (
	BackendMongoDB Backend = "mongodb"
	BackendFile    Backend = "file"
)

func (b Backend) String() string {
	return string(b)
}

// Review - отзыв пользователя
// ID заполняется только MongoDB; в файловом хранилище идентификатором служит позиция в массиве
type Review struct {
	ID        string    `json:"_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"date"`
}

type ReviewEvent struct {
	EventType string    `json:"event_type"` // REVIEW_CREATED
	ReviewID  string    `json:"review_id,omitempty"`
	Email     string    `json:"email"`
	Backend   Backend   `json:"backend"`
	Timestamp time.Time `json:"timestamp"`
}
