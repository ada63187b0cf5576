package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	Password     string    `gorm:"not null" json:"-"` // bcrypt hash, never the plaintext
	Points       int       `gorm:"not null;default:0" json:"points"`
	LabeledCount int       `gorm:"not null;default:0" json:"labeled_count"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// User <-> Label
	Labels []Label `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"labels,omitempty"`

	// User <-> Report
	Reports []Report `gorm:"constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"reports,omitempty"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
