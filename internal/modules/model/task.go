package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Task struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Type        string                      `gorm:"type:varchar(64);not null;index" json:"type"`
	Data        datatypes.JSON              `gorm:"not null" swaggertype:"object" json:"data"`
	Title       string                      `gorm:"type:varchar(256)" json:"title"`
	Description string                      `gorm:"type:text" json:"description"`
	Point       int                         `gorm:"not null" json:"point"`
	Tags        datatypes.JSONSlice[string] `swaggertype:"array,string" json:"tags"`
	IsDone      bool                        `gorm:"not null;default:false;index" json:"is_done"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Task <-> Label
	Labels []Label `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"labels,omitempty"`

	// Task <-> Report
	Reports []Report `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"reports,omitempty"`
}

func (Task) TableName() string { return "tasks" }

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
