package service

import (
	"context"
	"encoding/json"

	"github.com/barchasb-io/barchasb/internal/infra/queue"
	"github.com/barchasb-io/barchasb/internal/modules/model"
	"github.com/barchasb-io/barchasb/internal/modules/repo"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// consensusThreshold is the label count a task must strictly exceed before
// majority agreement closes it.
const consensusThreshold = 5

type LabelService interface {
	Submit(ctx context.Context, userID, taskID uuid.UUID, content datatypes.JSON) (*model.Label, error)
	Consensus(ctx context.Context, taskID uuid.UUID) (*model.Task, error)
	Tally(ctx context.Context, taskID uuid.UUID) (*TallyOutput, error)
}

type labelService struct {
	labels repo.LabelRepo
	tasks  repo.TaskRepo
	mq     *amqp.Connection
	queue  string
	log    *zap.Logger
}

func NewLabelService(labels repo.LabelRepo, tasks repo.TaskRepo, mq *amqp.Connection, queueName string, log *zap.Logger) LabelService {
	return &labelService{
		labels: labels,
		tasks:  tasks,
		mq:     mq,
		queue:  queueName,
		log:    log,
	}
}

// Submit records the annotation and credits the reward inside one
// transaction handled by the repo; no partial state is ever visible.
func (s *labelService) Submit(ctx context.Context, userID, taskID uuid.UUID, content datatypes.JSON) (*model.Label, error) {
	l := model.Label{UserID: userID, TaskID: taskID, Content: content}
	if err := s.labels.SubmitWithReward(ctx, &l); err != nil {
		return nil, translate(err)
	}
	return &l, nil
}

// TallyOutput is the non-mutating consensus view of a task.
type TallyOutput struct {
	TaskID         uuid.UUID       `json:"task_id"`
	ConsensusValue json.RawMessage `json:"consensus_value"`
	VoteCounts     map[string]int  `json:"vote_counts"`
}

// tally counts labels by exact content equality. Labels arrive ordered by
// submission time, so a tie is won by the earliest-submitted content.
func tally(labels []model.Label) (winner json.RawMessage, votes map[string]int) {
	votes = make(map[string]int, len(labels))
	best := 0
	for _, l := range labels {
		key := string(l.Content)
		votes[key]++
		if votes[key] > best {
			best = votes[key]
			winner = json.RawMessage(l.Content)
		}
	}
	return winner, votes
}

// Consensus tallies the task's labels and, once the label count strictly
// exceeds the threshold, irreversibly marks the task done. The task is
// returned whether or not it was closed; a task with no labels returns nil.
func (s *labelService) Consensus(ctx context.Context, taskID uuid.UUID) (*model.Task, error) {
	labels, err := s.labels.ListByTask(ctx, taskID)
	if err != nil {
		return nil, translate(err)
	}
	if len(labels) == 0 {
		return nil, nil
	}

	winner, _ := tally(labels)

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, translate(err)
	}

	if len(labels) > consensusThreshold && !task.IsDone {
		task, err = s.tasks.SetDone(ctx, taskID)
		if err != nil {
			return nil, translate(err)
		}
		s.publishTaskDone(ctx, task, winner, len(labels))
	}
	return task, nil
}

// Tally is the read-only variant for callers that need the winning content
// and vote distribution instead of a state change.
func (s *labelService) Tally(ctx context.Context, taskID uuid.UUID) (*TallyOutput, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, translate(err)
	}

	labels, err := s.labels.ListByTask(ctx, taskID)
	if err != nil {
		return nil, translate(err)
	}

	winner, votes := tally(labels)
	return &TallyOutput{TaskID: taskID, ConsensusValue: winner, VoteCounts: votes}, nil
}

type taskDoneEvent struct {
	Event          string          `json:"event"`
	TaskID         uuid.UUID       `json:"task_id"`
	LabelCount     int             `json:"label_count"`
	ConsensusValue json.RawMessage `json:"consensus_value"`
}

// publishTaskDone notifies downstream consumers that consensus closed a
// task. Best effort: a broker failure is logged, never surfaced.
func (s *labelService) publishTaskDone(ctx context.Context, task *model.Task, winner json.RawMessage, count int) {
	if s.mq == nil {
		return
	}
	p, err := queue.NewPublisher(s.mq, s.queue, s.log)
	if err != nil {
		s.log.Sugar().Warnw("create task done publisher", "err", err)
		return
	}
	defer p.Close()

	ev := taskDoneEvent{Event: "task.done", TaskID: task.ID, LabelCount: count, ConsensusValue: winner}
	if err := p.PublishJSON(ctx, ev); err != nil {
		s.log.Sugar().Warnw("publish task done", "task_id", task.ID, "err", err)
	}
}
