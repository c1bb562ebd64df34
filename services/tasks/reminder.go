package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"glossify/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds the asynq task for a reminder, scheduled to run at
// the payload's fire time.
func NewReminderTask(payload models.ReminderPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(payload.FireAt)}

	return task, opts, nil
}

// ReminderQueue enqueues reminder tasks on the asynq-backed queue.
type ReminderQueue struct {
	client *asynq.Client
}

func NewReminderQueue(client *asynq.Client) (*ReminderQueue, error) {
	if client == nil {
		return nil, fmt.Errorf("reminder queue initialization error: asynq client is nil")
	}
	return &ReminderQueue{client: client}, nil
}

// Schedule enqueues a reminder for delivery at payload.FireAt.
func (q *ReminderQueue) Schedule(ctx context.Context, payload models.ReminderPayload) error {
	task, opts, err := NewReminderTask(payload)
	if err != nil {
		return fmt.Errorf("Schedule: failed to build reminder task: %w", err)
	}
	if _, err := q.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("Schedule: failed to enqueue reminder: %w", err)
	}
	return nil
}
