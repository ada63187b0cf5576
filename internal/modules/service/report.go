package service

import (
	"context"

	"github.com/barchasb-io/barchasb/internal/modules/model"
	"github.com/barchasb-io/barchasb/internal/modules/repo"
	"github.com/google/uuid"
)

type ReportService interface {
	Submit(ctx context.Context, userID, taskID uuid.UUID, details string) (*model.Report, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Report, error)
}

type reportService struct{ r repo.ReportRepo }

func NewReportService(r repo.ReportRepo) ReportService {
	return &reportService{r: r}
}

func (s *reportService) Submit(ctx context.Context, userID, taskID uuid.UUID, details string) (*model.Report, error) {
	rep := model.Report{UserID: &userID, TaskID: taskID, Details: details}
	if err := s.r.SubmitChecked(ctx, &rep); err != nil {
		return nil, translate(err)
	}
	return &rep, nil
}

func (s *reportService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Report, error) {
	reports, err := s.r.ListByUser(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	return reports, nil
}
