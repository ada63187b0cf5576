package repo

import (
	"context"
	"fmt"

	"github.com/barchasb-io/barchasb/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LabelRepo interface {
	SubmitWithReward(ctx context.Context, l *model.Label) error
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]model.Label, error)
}

type labelRepo struct{ db *gorm.DB }

func NewLabelRepo(db *gorm.DB) LabelRepo {
	return &labelRepo{db: db}
}

// SubmitWithReward inserts the label and credits the user's points and
// labeled_count in one transaction. The counter update is a single atomic
// UPDATE expression evaluated by the storage engine, so concurrent
// submissions for the same user cannot lose an increment. Dangling user or
// task references abort the transaction with gorm.ErrRecordNotFound before
// anything is visible.
func (r *labelRepo) SubmitWithReward(ctx context.Context, l *model.Label) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Where("id = ?", l.UserID).First(&user).Error; err != nil {
			return fmt.Errorf("user %s: %w", l.UserID, err)
		}

		var task model.Task
		if err := tx.Where("id = ?", l.TaskID).First(&task).Error; err != nil {
			return fmt.Errorf("task %s: %w", l.TaskID, err)
		}

		if err := tx.Create(l).Error; err != nil {
			return err
		}

		return tx.Model(&model.User{}).Where("id = ?", l.UserID).
			UpdateColumns(map[string]interface{}{
				"points":        gorm.Expr("points + ?", task.Point),
				"labeled_count": gorm.Expr("labeled_count + ?", 1),
			}).Error
	})
}

// ListByTask returns the task's labels ordered by submission time, earliest
// first, with the id as a stable secondary key.
func (r *labelRepo) ListByTask(ctx context.Context, taskID uuid.UUID) ([]model.Label, error) {
	var labels []model.Label
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC, id ASC").
		Find(&labels).Error
	return labels, err
}
