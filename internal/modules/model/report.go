package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report flags a problem with a task. The reporting user is optional so that
// reports survive user deletion.
type Report struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TaskID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"task_id"`
	UserID  *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Details string     `gorm:"type:text;not null" json:"details"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"user,omitempty"`
	Task *Task `gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"task,omitempty"`
}

func (Report) TableName() string { return "reports" }

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
