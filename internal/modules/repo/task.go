package repo

import (
	"context"

	"github.com/barchasb-io/barchasb/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepo interface {
	Create(ctx context.Context, t *model.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	Feed(ctx context.Context, userID uuid.UUID, limit int) ([]model.Task, error)
	ListDone(ctx context.Context) ([]model.Task, error)
	SetDone(ctx context.Context, id uuid.UUID) (*model.Task, error)
	ListLabeledByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
}

type taskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) TaskRepo {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, t *model.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *taskRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var t model.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Feed returns open tasks the user has neither labeled nor reported.
func (r *taskRepo) Feed(ctx context.Context, userID uuid.UUID, limit int) ([]model.Task, error) {
	labeled := r.db.Model(&model.Label{}).Select("task_id").Where("user_id = ?", userID)
	reported := r.db.Model(&model.Report{}).Select("task_id").Where("user_id = ?", userID)

	var tasks []model.Task
	q := r.db.WithContext(ctx).
		Where("is_done = ?", false).
		Where("id NOT IN (?)", labeled).
		Where("id NOT IN (?)", reported).
		Order("created_at ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return tasks, q.Find(&tasks).Error
}

func (r *taskRepo) ListDone(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	return tasks, r.db.WithContext(ctx).Where("is_done = ?", true).Find(&tasks).Error
}

// SetDone flips is_done and returns the updated row. The transition is
// one-way; there is no operation that clears the flag.
func (r *taskRepo) SetDone(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var t model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&t).Error; err != nil {
			return err
		}
		if t.IsDone {
			return nil
		}
		if err := tx.Model(&t).Update("is_done", true).Error; err != nil {
			return err
		}
		t.IsDone = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) ListLabeledByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Distinct("tasks.*").
		Joins("JOIN labels ON labels.task_id = tasks.id").
		Where("labels.user_id = ?", userID).
		Find(&tasks).Error
	return tasks, err
}
