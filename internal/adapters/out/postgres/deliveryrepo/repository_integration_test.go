package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/deliveryrepo"
	"shipping/internal/core/domain/model/delivery"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DeliveryRepositoryIntegrationTestSuite provides integration tests for DeliveryRepository
// using PostgreSQL containers to verify database persistence behavior.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_ValidDelivery_Success() {
	ctx := context.Background()

	testDelivery := suite.createTestDelivery(kernel.NewUUID(), nil)

	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery).Once()

	err := suite.repository.Add(ctx, testDelivery)
	suite.Require().NoError(err)

	suite.assertDeliveryCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_ExistingDelivery_ReturnsDelivery() {
	ctx := context.Background()

	courierID := kernel.NewUUID()
	start := time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)
	original := suite.createTestDelivery(courierID, &start)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("Office chair", retrieved.Product())
	suite.Equal(original.RecipientID(), retrieved.RecipientID())
	suite.Equal(courierID, retrieved.CourierID())
	suite.Equal(delivery.Created, retrieved.Status())
	suite.Require().NotNil(retrieved.StartDate())
	suite.WithinDuration(start, *retrieved.StartDate(), time.Second)
	suite.Nil(retrieved.EndDate())
	suite.Nil(retrieved.CanceledAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_NonExistentDelivery_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_LifecycleTransition_Persisted() {
	ctx := context.Background()

	courierID := kernel.NewUUID()
	testDelivery := suite.createTestDelivery(courierID, nil)

	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testDelivery))

	// Start transit and persist the transition
	start := time.Date(2024, 3, 12, 11, 30, 0, 0, time.UTC)
	suite.Require().NoError(testDelivery.Start(start))
	suite.Require().NoError(suite.repository.Update(ctx, testDelivery))

	retrieved, err := suite.repository.Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.InTransit, retrieved.Status())
	suite.Require().NotNil(retrieved.StartDate())
	suite.WithinDuration(start, *retrieved.StartDate(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_NonExistentDelivery_ReturnsError() {
	ctx := context.Background()

	nonExistent := suite.createTestDelivery(kernel.NewUUID(), nil)

	err := suite.repository.Update(ctx, nonExistent)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetForCourier_OwnDelivery_ReturnsDelivery() {
	ctx := context.Background()

	courierID := kernel.NewUUID()
	testDelivery := suite.createTestDelivery(courierID, nil)

	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testDelivery))

	retrieved, err := suite.repository.GetForCourier(ctx, testDelivery.ID(), courierID)
	suite.Require().NoError(err)
	suite.Equal(testDelivery.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetForCourier_ForeignDelivery_ReturnsNotFoundError() {
	ctx := context.Background()

	testDelivery := suite.createTestDelivery(kernel.NewUUID(), nil)

	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testDelivery))

	retrieved, err := suite.repository.GetForCourier(ctx, testDelivery.ID(), kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetForCourier_CanceledDelivery_ReturnsNotFoundError() {
	ctx := context.Background()

	courierID := kernel.NewUUID()
	testDelivery := suite.createTestDelivery(courierID, nil)

	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testDelivery))

	suite.Require().NoError(testDelivery.Cancel(time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, testDelivery))

	retrieved, err := suite.repository.GetForCourier(ctx, testDelivery.ID(), courierID)

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestCountActiveForCourierOn_QuotaPredicate() {
	ctx := context.Background()

	courierID := kernel.NewUUID()
	otherCourierID := kernel.NewUUID()
	day := time.Date(2024, 3, 12, 14, 0, 0, 0, time.UTC)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(6)

	// Two deliveries starting on the counted day
	sameDayMorning := day.Add(-5 * time.Hour)
	sameDayEvening := day.Add(5 * time.Hour)
	suite.addDelivery(ctx, courierID, &sameDayMorning)
	suite.addDelivery(ctx, courierID, &sameDayEvening)

	// Canceled deliveries do not count against the quota
	canceled := suite.createTestDelivery(courierID, &day)
	suite.Require().NoError(canceled.Cancel(day))
	suite.Require().NoError(suite.repository.Add(ctx, canceled))

	// Different day, different courier and unscheduled deliveries are out of scope
	nextDay := day.Add(24 * time.Hour)
	suite.addDelivery(ctx, courierID, &nextDay)
	suite.addDelivery(ctx, otherCourierID, &day)
	suite.addDelivery(ctx, courierID, nil)

	count, err := suite.repository.CountActiveForCourierOn(ctx, courierID, day)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	suite.tracker.AssertExpectations(suite.T())
}

// addDelivery creates and persists a delivery for the given courier.
func (suite *DeliveryRepositoryIntegrationTestSuite) addDelivery(
	ctx context.Context, courierID kernel.UUID, start *time.Time,
) *delivery.Delivery {
	testDelivery := suite.createTestDelivery(courierID, start)
	suite.Require().NoError(suite.repository.Add(ctx, testDelivery))
	return testDelivery
}

// createTestDelivery creates a basic test delivery with default values.
func (suite *DeliveryRepositoryIntegrationTestSuite) createTestDelivery(
	courierID kernel.UUID, start *time.Time,
) *delivery.Delivery {
	testDelivery, err := delivery.NewDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		courierID,
		"Office chair",
		start,
	)
	suite.Require().NoError(err)
	return testDelivery
}

// assertDeliveryCount verifies the number of deliveries in the database.
func (suite *DeliveryRepositoryIntegrationTestSuite) assertDeliveryCount(expected int) {
	var count int64
	err := suite.db.Model(&deliveryrepo.DeliveryDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
