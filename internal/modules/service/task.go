package service

import (
	"context"

	"github.com/barchasb-io/barchasb/internal/modules/model"
	"github.com/barchasb-io/barchasb/internal/modules/repo"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TaskService interface {
	Create(ctx context.Context, in CreateTaskInput) (*model.Task, error)
	Feed(ctx context.Context, userID uuid.UUID, limit int) ([]model.Task, error)
	ListDone(ctx context.Context) ([]model.Task, error)
	MarkDone(ctx context.Context, taskID uuid.UUID) (*model.Task, error)
	LabeledByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
}

type taskService struct{ r repo.TaskRepo }

func NewTaskService(r repo.TaskRepo) TaskService {
	return &taskService{r: r}
}

type CreateTaskInput struct {
	Type        string
	Data        datatypes.JSON
	Title       string
	Description string
	Point       int
	Tags        []string
	IsDone      bool
}

func (s *taskService) Create(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	t := model.Task{
		Type:        in.Type,
		Data:        in.Data,
		Title:       in.Title,
		Description: in.Description,
		Point:       in.Point,
		Tags:        datatypes.NewJSONSlice(in.Tags),
		IsDone:      in.IsDone,
	}
	if err := s.r.Create(ctx, &t); err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

// Feed lists open tasks the user has not touched yet, oldest first.
func (s *taskService) Feed(ctx context.Context, userID uuid.UUID, limit int) ([]model.Task, error) {
	tasks, err := s.r.Feed(ctx, userID, limit)
	if err != nil {
		return nil, translate(err)
	}
	return tasks, nil
}

func (s *taskService) ListDone(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.r.ListDone(ctx)
	if err != nil {
		return nil, translate(err)
	}
	return tasks, nil
}

// MarkDone is the administrative override; it closes the task regardless of
// the consensus threshold.
func (s *taskService) MarkDone(ctx context.Context, taskID uuid.UUID) (*model.Task, error) {
	t, err := s.r.SetDone(ctx, taskID)
	if err != nil {
		return nil, translate(err)
	}
	return t, nil
}

func (s *taskService) LabeledByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	tasks, err := s.r.ListLabeledByUser(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	return tasks, nil
}
