package notifications

import (
	"context"
	"encoding/json"
	"log/slog"

	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// Dispatcher delivers a courier notification. Implementations decide whether
// the email goes out synchronously or through the background job queue.
// Dispatch never returns an error: failures are logged and dropped.
type Dispatcher interface {
	Dispatch(ctx context.Context, n Notification)
}

// DirectDispatcher sends notifications synchronously through a Mailer.
// Suitable for small installations without a worker process.
type DirectDispatcher struct {
	mailer ports.Mailer
	logger *slog.Logger
}

// NewDirectDispatcher creates a dispatcher that sends mail inline.
func NewDirectDispatcher(mailer ports.Mailer, logger *slog.Logger) (*DirectDispatcher, error) {
	if mailer == nil {
		return nil, errs.NewValueIsRequiredError("mailer")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DirectDispatcher{mailer: mailer, logger: logger}, nil
}

// Dispatch composes the email for the notification and sends it. A send
// failure is logged and swallowed.
func (d *DirectDispatcher) Dispatch(ctx context.Context, n Notification) {
	if err := n.Kind.Validate(); err != nil {
		d.logger.Error("notification dropped", "error", err)
		return
	}

	subject, body := n.Compose()
	if err := d.mailer.Send(ctx, n.Recipient(), subject, body); err != nil {
		d.logger.Error("notification mail failed",
			"kind", n.Kind.JobName(),
			"delivery_id", n.DeliveryID,
			"error", err)
		return
	}

	d.logger.Info("notification mail sent",
		"kind", n.Kind.JobName(),
		"delivery_id", n.DeliveryID)
}

// QueuedDispatcher persists notifications as background jobs. A worker
// process picks them up and sends the mail, retrying on failure.
type QueuedDispatcher struct {
	queue  ports.JobQueue
	logger *slog.Logger
}

// NewQueuedDispatcher creates a dispatcher that enqueues mail jobs.
func NewQueuedDispatcher(queue ports.JobQueue, logger *slog.Logger) (*QueuedDispatcher, error) {
	if queue == nil {
		return nil, errs.NewValueIsRequiredError("queue")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &QueuedDispatcher{queue: queue, logger: logger}, nil
}

// Dispatch stores the notification as a job named after its kind. An
// enqueue failure is logged and swallowed.
func (d *QueuedDispatcher) Dispatch(ctx context.Context, n Notification) {
	if err := n.Kind.Validate(); err != nil {
		d.logger.Error("notification dropped", "error", err)
		return
	}

	payload, err := json.Marshal(n)
	if err != nil {
		d.logger.Error("notification payload marshal failed",
			"kind", n.Kind.JobName(), "error", err)
		return
	}

	if err := d.queue.Enqueue(ctx, n.Kind.JobName(), payload); err != nil {
		d.logger.Error("notification enqueue failed",
			"kind", n.Kind.JobName(),
			"delivery_id", n.DeliveryID,
			"error", err)
		return
	}

	d.logger.Info("notification enqueued",
		"kind", n.Kind.JobName(),
		"delivery_id", n.DeliveryID)
}
