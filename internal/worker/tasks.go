package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the queue background ledger jobs run on.
	QueueDefault = "default"

	// TaskTypeGenerateInvoices is the task type for the monthly lease
	// invoicing run.
	TaskTypeGenerateInvoices = "leaseinvoice:generate"

	// SystemActorID is the audit identity billing runs act under when no
	// human triggered them.
	SystemActorID = "system-billing"
)

// GenerateInvoicesPayload scopes one invoicing run.
type GenerateInvoicesPayload struct {
	AsOf        time.Time `json:"asOf"`
	ActorUserID string    `json:"actorUserID"`
}

// NewGenerateInvoicesTask constructs the Asynq task for an invoicing run.
func NewGenerateInvoicesTask(payload GenerateInvoicesPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeGenerateInvoices, data), nil
}

// Client submits ledger jobs to the queue.
type Client struct {
	client *asynq.Client
}

// NewClient constructs an Asynq client on the given Redis address.
func NewClient(redisAddr string) *Client {
	return &Client{client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})}
}

// EnqueueGenerateInvoices enqueues an invoicing run.
func (c *Client) EnqueueGenerateInvoices(ctx context.Context, payload GenerateInvoicesPayload) (*asynq.TaskInfo, error) {
	task, err := NewGenerateInvoicesTask(payload)
	if err != nil {
		return nil, err
	}
	return c.client.EnqueueContext(ctx, task, asynq.Queue(QueueDefault))
}

// Close releases client resources.
func (c *Client) Close() error {
	return c.client.Close()
}
