package attemptrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"orderflow/internal/adapters/out/postgres/attemptrepo"
	"orderflow/internal/core/domain/model/attempt"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	_ "github.com/lib/pq"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// AttemptRepositoryIntegrationTestSuite exercises the append-only ledger
// against a real PostgreSQL container, in particular the number assignment
// done inside the insert statement.
type AttemptRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *attemptrepo.GormAttemptRepository
	tracker    *MockAggregateTracker
}

func (suite *AttemptRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&attemptrepo.AttemptDTO{}))
}

func (suite *AttemptRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_attempts").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = attemptrepo.NewGormAttemptRepository(suite.db, suite.tracker)
}

func (suite *AttemptRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AttemptRepositoryIntegrationTestSuite) TestAppend_AssignsSequentialNumbers() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	outcomes := []attempt.Outcome{attempt.Attempted, attempt.Other, attempt.Successful}
	for _, outcome := range outcomes {
		suite.Require().NoError(suite.repository.Append(ctx, suite.newEntry(orderID, outcome)))
	}

	ledger, err := suite.repository.ListByOrder(ctx, orderID)
	suite.Require().NoError(err)

	suite.Require().Len(ledger, 3)
	for i, entry := range ledger {
		suite.Equal(i+1, entry.Number())
		suite.Equal(outcomes[i], entry.Outcome())
	}
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AttemptRepositoryIntegrationTestSuite) TestAppend_NumbersArePerOrder() {
	ctx := context.Background()
	firstOrder := kernel.NewUUID()
	secondOrder := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	suite.Require().NoError(suite.repository.Append(ctx, suite.newEntry(firstOrder, attempt.Attempted)))
	suite.Require().NoError(suite.repository.Append(ctx, suite.newEntry(firstOrder, attempt.Failed)))
	suite.Require().NoError(suite.repository.Append(ctx, suite.newEntry(secondOrder, attempt.Attempted)))

	firstLedger, err := suite.repository.ListByOrder(ctx, firstOrder)
	suite.Require().NoError(err)
	suite.Require().Len(firstLedger, 2)
	suite.Equal(2, firstLedger[1].Number())

	secondLedger, err := suite.repository.ListByOrder(ctx, secondOrder)
	suite.Require().NoError(err)
	suite.Require().Len(secondLedger, 1)
	suite.Equal(1, secondLedger[0].Number())
}

func (suite *AttemptRepositoryIntegrationTestSuite) TestAppend_PersistsWorkerAndAuditDetails() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	workerID := kernel.NewUUID()
	attemptedAt := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	entry, err := attempt.NewAttempt(
		kernel.NewUUID(), orderID, attempt.CustomerNotAvailable, &workerID,
		"nobody home", "tried twice", "Hay El Qods", attemptedAt)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", entry.ID(), entry).Once()
	suite.Require().NoError(suite.repository.Append(ctx, entry))

	ledger, err := suite.repository.ListByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(ledger, 1)

	restored := ledger[0]
	suite.Equal(attempt.CustomerNotAvailable, restored.Outcome())
	suite.Require().NotNil(restored.DeliveryMan())
	suite.True(restored.DeliveryMan().IsEqual(workerID))
	suite.Equal("nobody home", restored.Reason())
	suite.Equal("tried twice", restored.Notes())
	suite.Equal("Hay El Qods", restored.Location())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AttemptRepositoryIntegrationTestSuite) TestListByOrder_EmptyLedger() {
	ctx := context.Background()

	ledger, err := suite.repository.ListByOrder(ctx, kernel.NewUUID())

	suite.Require().NoError(err)
	suite.Empty(ledger)
}

func (suite *AttemptRepositoryIntegrationTestSuite) newEntry(
	orderID kernel.UUID, outcome attempt.Outcome,
) *attempt.Attempt {
	workerID := kernel.NewUUID()
	entry, err := attempt.NewAttempt(
		kernel.NewUUID(), orderID, outcome, &workerID, "reason", "", "", time.Now().UTC())
	suite.Require().NoError(err)
	return entry
}

func TestAttemptRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AttemptRepositoryIntegrationTestSuite))
}
