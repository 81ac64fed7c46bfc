package models

import (
	"time"

	"github.com/google/uuid"
)

type BaseModel struct {
	ID        string    `json:"id,omitempty" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func newID() string {
	return uuid.NewString()
}
