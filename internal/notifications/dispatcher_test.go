package notifications_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"shipping/internal/notifications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MailerMock is a mock implementation of ports.Mailer.
type MailerMock struct {
	mock.Mock
}

func (m *MailerMock) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

// JobQueueMock is a mock implementation of ports.JobQueue.
type JobQueueMock struct {
	mock.Mock
}

func (m *JobQueueMock) Enqueue(ctx context.Context, jobName string, payload []byte) error {
	args := m.Called(ctx, jobName, payload)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func assignmentNotification() notifications.Notification {
	return notifications.Notification{
		Kind:         notifications.KindNewAssignment,
		CourierName:  "John Doe",
		CourierEmail: "john@example.com",
		DeliveryID:   "f2b2a1f0-9d6f-4c57-9f3e-3a1c2d4e5f60",
		Product:      "Office chair",
	}
}

func TestDirectDispatcher(t *testing.T) {
	ctx := context.Background()

	t.Run("sends_composed_mail_to_courier", func(t *testing.T) {
		n := assignmentNotification()
		subject, body := n.Compose()

		mailer := &MailerMock{}
		mailer.On("Send", ctx, "John Doe <john@example.com>", subject, body).Return(nil)

		dispatcher, err := notifications.NewDirectDispatcher(mailer, discardLogger())
		require.NoError(t, err)

		dispatcher.Dispatch(ctx, n)

		mailer.AssertExpectations(t)
	})

	t.Run("mail_failure_is_swallowed", func(t *testing.T) {
		mailer := &MailerMock{}
		mailer.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp unavailable"))

		dispatcher, err := notifications.NewDirectDispatcher(mailer, discardLogger())
		require.NoError(t, err)

		assert.NotPanics(t, func() {
			dispatcher.Dispatch(ctx, assignmentNotification())
		})
	})

	t.Run("unknown_kind_is_dropped_without_sending", func(t *testing.T) {
		mailer := &MailerMock{}

		dispatcher, err := notifications.NewDirectDispatcher(mailer, discardLogger())
		require.NoError(t, err)

		dispatcher.Dispatch(ctx, notifications.Notification{CourierEmail: "john@example.com"})

		mailer.AssertNotCalled(t, "Send")
	})

	t.Run("nil_mailer_is_rejected", func(t *testing.T) {
		_, err := notifications.NewDirectDispatcher(nil, discardLogger())

		require.Error(t, err)
	})
}

func TestQueuedDispatcher(t *testing.T) {
	ctx := context.Background()

	t.Run("enqueues_job_named_after_kind", func(t *testing.T) {
		n := notifications.Notification{
			Kind:         notifications.KindCancellation,
			CourierName:  "John Doe",
			CourierEmail: "john@example.com",
			DeliveryID:   "f2b2a1f0-9d6f-4c57-9f3e-3a1c2d4e5f60",
			Product:      "Office chair",
			Reason:       "Recipient was absent at the address",
		}

		queue := &JobQueueMock{}
		queue.On("Enqueue", ctx, notifications.DeliveryCancellationMailJob, mock.Anything).Return(nil)

		dispatcher, err := notifications.NewQueuedDispatcher(queue, discardLogger())
		require.NoError(t, err)

		dispatcher.Dispatch(ctx, n)

		queue.AssertExpectations(t)

		var stored notifications.Notification
		payload := queue.Calls[0].Arguments.Get(2).([]byte)
		require.NoError(t, json.Unmarshal(payload, &stored))
		assert.Equal(t, n.CourierEmail, stored.CourierEmail)
		assert.Equal(t, n.Reason, stored.Reason)
	})

	t.Run("enqueue_failure_is_swallowed", func(t *testing.T) {
		queue := &JobQueueMock{}
		queue.On("Enqueue", ctx, mock.Anything, mock.Anything).
			Return(errors.New("relation does not exist"))

		dispatcher, err := notifications.NewQueuedDispatcher(queue, discardLogger())
		require.NoError(t, err)

		assert.NotPanics(t, func() {
			dispatcher.Dispatch(ctx, assignmentNotification())
		})
	})
}

func TestKindFromJobName(t *testing.T) {
	t.Run("round_trips_defined_kinds", func(t *testing.T) {
		for _, kind := range []notifications.Kind{
			notifications.KindNewAssignment,
			notifications.KindCancellation,
		} {
			resolved, err := notifications.KindFromJobName(kind.JobName())

			require.NoError(t, err)
			assert.Equal(t, kind, resolved)
		}
	})

	t.Run("unknown_name_is_rejected", func(t *testing.T) {
		_, err := notifications.KindFromJobName("WelcomeMail")

		require.Error(t, err)
	})
}

func TestNotificationCompose(t *testing.T) {
	t.Run("assignment_mentions_product", func(t *testing.T) {
		subject, body := assignmentNotification().Compose()

		assert.Equal(t, "Hello John Doe, you have a new delivery!", subject)
		assert.Contains(t, body, "Office chair")
	})

	t.Run("cancellation_mentions_reason", func(t *testing.T) {
		n := assignmentNotification()
		n.Kind = notifications.KindCancellation
		n.Reason = "Package damaged in transit"

		subject, body := n.Compose()

		assert.Equal(t, "Delivery canceled!", subject)
		assert.Contains(t, body, "Package damaged in transit")
		assert.Contains(t, body, n.DeliveryID)
	})
}
