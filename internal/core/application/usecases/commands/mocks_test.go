package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/courier"
	"shipping/internal/core/domain/model/delivery"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/problem"
	"shipping/internal/core/domain/model/recipient"
	"shipping/internal/core/ports"
	"shipping/internal/notifications"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetForCourier(
	ctx context.Context, id, courierID kernel.UUID,
) (*delivery.Delivery, error) {
	args := m.Called(ctx, id, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) CountActiveForCourierOn(
	ctx context.Context, courierID kernel.UUID, day time.Time,
) (int64, error) {
	args := m.Called(ctx, courierID, day)
	return args.Get(0).(int64), args.Error(1)
}

type MockProblemRepository struct{ mock.Mock }

func (m *MockProblemRepository) Add(ctx context.Context, p *problem.Problem) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProblemRepository) Get(ctx context.Context, id kernel.UUID) (*problem.Problem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*problem.Problem), args.Error(1)
}

func (m *MockProblemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockRecipientRepository struct{ mock.Mock }

func (m *MockRecipientRepository) Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipient.Recipient), args.Error(1)
}

type MockSignatureRepository struct{ mock.Mock }

func (m *MockSignatureRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockDeliveryUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockDeliveryUoW) RecipientRepository() ports.RecipientRepository {
	args := m.Called()
	return args.Get(0).(ports.RecipientRepository)
}

func (m *MockDeliveryUoW) SignatureRepository() ports.SignatureRepository {
	args := m.Called()
	return args.Get(0).(ports.SignatureRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockProblemUoW struct{ mock.Mock }

func (m *MockProblemUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProblemUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProblemUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProblemUoW) ProblemRepository() ports.ProblemRepository {
	args := m.Called()
	return args.Get(0).(ports.ProblemRepository)
}

func (m *MockProblemUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockProblemUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockProblemUoWFactory struct{ mock.Mock }

func (m *MockProblemUoWFactory) Create() commands.ProblemUoW {
	args := m.Called()
	return args.Get(0).(commands.ProblemUoW)
}

// DispatcherRecorder captures dispatched notifications for assertions.
type DispatcherRecorder struct {
	mu   sync.Mutex
	Sent []notifications.Notification
}

func (d *DispatcherRecorder) Dispatch(_ context.Context, n notifications.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Sent = append(d.Sent, n)
}

// Test fixtures shared across handler tests. The clock is pinned inside
// office hours so schedule checks pass unless a test moves it.
var testClock = time.Date(2024, 3, 12, 10, 0, 0, 0, time.Local)

func fixedClock() time.Time { return testClock }

func testOfficeHours(t *testing.T) kernel.OfficeHours {
	t.Helper()
	officeHours, err := kernel.NewOfficeHours("08:00", "18:00")
	require.NoError(t, err)
	return officeHours
}

func testCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "John Doe", "john@example.com")
	require.NoError(t, err)
	return c
}

func testRecipient(t *testing.T) *recipient.Recipient {
	t.Helper()
	r, err := recipient.NewRecipient(kernel.NewUUID(), "Jane Smith", "742 Evergreen Terrace")
	require.NoError(t, err)
	return r
}

func testDelivery(t *testing.T, courierID kernel.UUID, startDate *time.Time) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), courierID, "Office chair", startDate)
	require.NoError(t, err)
	return d
}
