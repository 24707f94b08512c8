package notificationrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/notificationrepo"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	repo      *notificationrepo.GormNotificationRepository
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.Require().NoError(postgres.Migrate(db))
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + pgtest.Tables).Error)
	suite.repo = notificationrepo.NewGormNotificationRepository(suite.db)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAdd_ThenGetPending_RestoresPayload() {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	requestID := kernel.NewUUID()

	scheduled, err := notification.NewRequestScheduled(requestID, kernel.MoneyFromFloat(3200.4), 5*time.Hour, base)
	suite.Require().NoError(err)
	warehouseID := kernel.NewUUID()
	stored, err := notification.NewContainerInWarehouse(requestID, warehouseID, base.Add(time.Minute))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.Add(ctx, scheduled, stored))

	pending, err := suite.repo.GetPending(ctx, base.Add(time.Hour), 5, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)

	first := pending[0]
	suite.True(scheduled.ID().IsEqual(first.ID()))
	suite.Equal(notification.KindRequestScheduled, first.Kind())
	suite.True(requestID.IsEqual(first.SubjectID()))
	suite.Equal("3200.40", first.Payload().Cost.String())
	suite.Equal(5*time.Hour, *first.Payload().Duration)
	suite.Equal(notification.StatusPending, first.Status())

	suite.Require().NotNil(pending[1].Payload().WarehouseID)
	suite.True(warehouseID.IsEqual(*pending[1].Payload().WarehouseID))
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGetPending_Filters() {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	old, err := notification.NewTruckBusy(kernel.NewUUID(), base)
	suite.Require().NoError(err)
	recent, err := notification.NewTruckFree(kernel.NewUUID(), base.Add(2*time.Hour))
	suite.Require().NoError(err)
	exhausted, err := notification.NewTruckFree(kernel.NewUUID(), base)
	suite.Require().NoError(err)
	delivered, err := notification.NewRequestInTransit(kernel.NewUUID(), base)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, old, recent, exhausted, delivered))

	for i := 0; i < 3; i++ {
		exhausted.MarkFailed(errors.New("resource service returned 503"))
	}
	suite.Require().NoError(suite.repo.Update(ctx, exhausted))
	delivered.MarkDelivered(base.Add(time.Minute))
	suite.Require().NoError(suite.repo.Update(ctx, delivered))

	pending, err := suite.repo.GetPending(ctx, base.Add(time.Hour), 3, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.True(old.ID().IsEqual(pending[0].ID()))
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdate_RecordsOutcome() {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	n, err := notification.NewTruckBusy(kernel.NewUUID(), base)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, n))

	n.MarkFailed(errors.New("connection refused"))
	suite.Require().NoError(suite.repo.Update(ctx, n))

	var dto notificationrepo.NotificationDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", n.ID().Bytes()).Error)
	suite.Equal(1, dto.Attempts)
	suite.Equal("connection refused", dto.LastError)
	suite.Equal(string(notification.StatusPending), dto.Status)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	n, err := notification.NewTruckBusy(kernel.NewUUID(), time.Now())
	suite.Require().NoError(err)

	err = suite.repo.Update(context.Background(), n)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
