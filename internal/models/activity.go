package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity é um compromisso do calendário. Date, StartTime e EndTime são
// guardados como texto para manter os formatos YYYY-MM-DD e HH:MM exatos.
type Activity struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title       string `gorm:"size:150;not null" json:"title"`
	Date        string `gorm:"size:10;not null;index" json:"date"`
	StartTime   string `gorm:"size:5;not null" json:"start_time"`
	EndTime     string `gorm:"size:5;not null" json:"end_time"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	Visibility string `gorm:"size:10;not null;default:'private';index" json:"visibility"`
	Status     string `gorm:"size:30" json:"status,omitempty"`

	UserID string `gorm:"type:uuid;index" json:"user_id,omitempty"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
