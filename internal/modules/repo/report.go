package repo

import (
	"context"
	"fmt"

	"github.com/barchasb-io/barchasb/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepo interface {
	SubmitChecked(ctx context.Context, rep *model.Report) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Report, error)
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepo(db *gorm.DB) ReportRepo {
	return &reportRepo{db: db}
}

// SubmitChecked verifies both references before the insert commits. Multiple
// reports per task/user pair are allowed.
func (r *reportRepo) SubmitChecked(ctx context.Context, rep *model.Report) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if rep.UserID != nil {
			var user model.User
			if err := tx.Where("id = ?", *rep.UserID).First(&user).Error; err != nil {
				return fmt.Errorf("user %s: %w", *rep.UserID, err)
			}
		}

		var task model.Task
		if err := tx.Where("id = ?", rep.TaskID).First(&task).Error; err != nil {
			return fmt.Errorf("task %s: %w", rep.TaskID, err)
		}

		return tx.Create(rep).Error
	})
}

func (r *reportRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Report, error) {
	var reports []model.Report
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&reports).Error
	return reports, err
}
