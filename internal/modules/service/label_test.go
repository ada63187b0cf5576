package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/barchasb-io/barchasb/internal/modules/model"
)

// MockLabelRepo is a mock implementation of LabelRepo
type MockLabelRepo struct {
	mock.Mock
}

func (m *MockLabelRepo) SubmitWithReward(ctx context.Context, l *model.Label) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLabelRepo) ListByTask(ctx context.Context, taskID uuid.UUID) ([]model.Label, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Label), args.Error(1)
}

// MockTaskRepo is a mock implementation of TaskRepo
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, t *model.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepo) Feed(ctx context.Context, userID uuid.UUID, limit int) ([]model.Task, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepo) ListDone(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepo) SetDone(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepo) ListLabeledByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func newLabelService(labels *MockLabelRepo, tasks *MockTaskRepo) LabelService {
	return NewLabelService(labels, tasks, nil, "task_done", zap.NewNop())
}

func labelsWith(contents ...string) []model.Label {
	out := make([]model.Label, 0, len(contents))
	for _, c := range contents {
		out = append(out, model.Label{ID: uuid.New(), Content: datatypes.JSON(c)})
	}
	return out
}

func TestLabelService_Submit(t *testing.T) {
	labels := new(MockLabelRepo)
	tasks := new(MockTaskRepo)
	svc := newLabelService(labels, tasks)

	userID, taskID := uuid.New(), uuid.New()
	labels.On("SubmitWithReward", mock.Anything, mock.MatchedBy(func(l *model.Label) bool {
		return l.UserID == userID && l.TaskID == taskID
	})).Return(nil)

	got, err := svc.Submit(context.Background(), userID, taskID, datatypes.JSON(`{"answer":"cat"}`))
	require.NoError(t, err)
	assert.Equal(t, taskID, got.TaskID)
	labels.AssertExpectations(t)
}

func TestLabelService_SubmitDanglingRef(t *testing.T) {
	labels := new(MockLabelRepo)
	tasks := new(MockTaskRepo)
	svc := newLabelService(labels, tasks)

	labels.On("SubmitWithReward", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)

	_, err := svc.Submit(context.Background(), uuid.New(), uuid.New(), datatypes.JSON(`{}`))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLabelService_ConsensusNoLabels(t *testing.T) {
	labels := new(MockLabelRepo)
	tasks := new(MockTaskRepo)
	svc := newLabelService(labels, tasks)

	taskID := uuid.New()
	labels.On("ListByTask", mock.Anything, taskID).Return([]model.Label{}, nil)

	task, err := svc.Consensus(context.Background(), taskID)
	require.NoError(t, err)
	assert.Nil(t, task)
	tasks.AssertNotCalled(t, "SetDone", mock.Anything, mock.Anything)
}

func TestLabelService_ConsensusBelowThreshold(t *testing.T) {
	labels := new(MockLabelRepo)
	tasks := new(MockTaskRepo)
	svc := newLabelService(labels, tasks)

	taskID := uuid.New()
	// exactly at the threshold is not enough; the count must exceed it
	labels.On("ListByTask", mock.Anything, taskID).Return(
		labelsWith(`"cat"`, `"cat"`, `"cat"`, `"cat"`, `"cat"`), nil)
	tasks.On("GetByID", mock.Anything, taskID).Return(&model.Task{ID: taskID}, nil)

	task, err := svc.Consensus(context.Background(), taskID)
	require.NoError(t, err)
	assert.False(t, task.IsDone)
	tasks.AssertNotCalled(t, "SetDone", mock.Anything, mock.Anything)
}

func TestLabelService_ConsensusClosesTask(t *testing.T) {
	labels := new(MockLabelRepo)
	tasks := new(MockTaskRepo)
	svc := newLabelService(labels, tasks)

	taskID := uuid.New()
	labels.On("ListByTask", mock.Anything, taskID).Return(
		labelsWith(`"cat"`, `"cat"`, `"cat"`, `"cat"`, `"dog"`, `"cat"`), nil)
	tasks.On("GetByID", mock.Anything, taskID).Return(&model.Task{ID: taskID}, nil)
	tasks.On("SetDone", mock.Anything, taskID).Return(&model.Task{ID: taskID, IsDone: true}, nil)

	task, err := svc.Consensus(context.Background(), taskID)
	require.NoError(t, err)
	assert.True(t, task.IsDone)
	tasks.AssertExpectations(t)
}

func TestLabelService_ConsensusAlreadyDone(t *testing.T) {
	labels := new(MockLabelRepo)
	tasks := new(MockTaskRepo)
	svc := newLabelService(labels, tasks)

	taskID := uuid.New()
	labels.On("ListByTask", mock.Anything, taskID).Return(
		labelsWith(`"cat"`, `"cat"`, `"cat"`, `"cat"`, `"cat"`, `"cat"`), nil)
	tasks.On("GetByID", mock.Anything, taskID).Return(&model.Task{ID: taskID, IsDone: true}, nil)

	task, err := svc.Consensus(context.Background(), taskID)
	require.NoError(t, err)
	assert.True(t, task.IsDone)
	tasks.AssertNotCalled(t, "SetDone", mock.Anything, mock.Anything)
}

func TestTally(t *testing.T) {
	winner, votes := tally(labelsWith(`"cat"`, `"dog"`, `"cat"`, `"dog"`, `"cat"`))
	assert.Equal(t, json.RawMessage(`"cat"`), winner)
	assert.Equal(t, map[string]int{`"cat"`: 3, `"dog"`: 2}, votes)
}

func TestTallyTieBreak(t *testing.T) {
	// on a tie the earliest-submitted content wins
	winner, _ := tally(labelsWith(`"dog"`, `"cat"`, `"cat"`, `"dog"`))
	assert.Equal(t, json.RawMessage(`"dog"`), winner)
}

func TestLabelService_Tally(t *testing.T) {
	labels := new(MockLabelRepo)
	tasks := new(MockTaskRepo)
	svc := newLabelService(labels, tasks)

	taskID := uuid.New()
	tasks.On("GetByID", mock.Anything, taskID).Return(&model.Task{ID: taskID}, nil)
	labels.On("ListByTask", mock.Anything, taskID).Return(labelsWith(`"cat"`, `"cat"`, `"dog"`), nil)

	out, err := svc.Tally(context.Background(), taskID)
	require.NoError(t, err)
	assert.Equal(t, taskID, out.TaskID)
	assert.Equal(t, json.RawMessage(`"cat"`), out.ConsensusValue)
	assert.Equal(t, 2, out.VoteCounts[`"cat"`])
	assert.Equal(t, 1, out.VoteCounts[`"dog"`])
}

func TestLabelService_TallyUnknownTask(t *testing.T) {
	labels := new(MockLabelRepo)
	tasks := new(MockTaskRepo)
	svc := newLabelService(labels, tasks)

	taskID := uuid.New()
	tasks.On("GetByID", mock.Anything, taskID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Tally(context.Background(), taskID)
	assert.ErrorIs(t, err, ErrNotFound)
}
