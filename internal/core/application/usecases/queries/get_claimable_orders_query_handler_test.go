package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetClaimableOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetClaimableOrdersQueryHandler
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.StatusEventDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetClaimableOrdersQueryHandler(db)
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_events CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetClaimableOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) TestHandle_ReturnsOldestFirst() {
	first := newDeliveryOrderCreatedAt(suite.T(), time.Now().UTC().Add(-2*time.Hour))
	second := newDeliveryOrderCreatedAt(suite.T(), time.Now().UTC().Add(-1*time.Hour))
	saveOrder(suite.T(), suite.db, second)
	saveOrder(suite.T(), suite.db, first)

	query := queries.NewGetClaimableOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(first.ID(), result[0].ID)
	suite.Equal(second.ID(), result[1].ID)
	suite.Equal(first.OrderNumber(), result[0].OrderNumber)
	suite.Equal("12 Campus Way", result[0].PickupAddress)
	suite.Equal(int64(1320), result[0].TotalCents)
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) TestHandle_ExcludesMerchantOrders() {
	saveOrder(suite.T(), suite.db, newMerchantOrder(suite.T()))
	claimable := newDeliveryOrder(suite.T())
	saveOrder(suite.T(), suite.db, claimable)

	query := queries.NewGetClaimableOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(claimable.ID(), result[0].ID)
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) TestHandle_ExcludesClaimedOrders() {
	claimed := newDeliveryOrder(suite.T())
	saveOrder(suite.T(), suite.db, claimed)

	err := claimed.Claim(kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	err = repo.ClaimPending(context.Background(), claimed)
	suite.Require().NoError(err)

	query := queries.NewGetClaimableOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetClaimableOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetClaimableOrdersQueryIsNotConstructed)
}

func TestGetClaimableOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetClaimableOrdersQueryHandlerTestSuite))
}

func newDeliveryOrderCreatedAt(t *testing.T, createdAt time.Time) *order.Order {
	t.Helper()
	id := kernel.NewUUID()
	pickup := newWaypoint(t, "12 Campus Way", 40.4443, -79.9436)
	dropoff := newWaypoint(t, "300 Dorm Hall", 40.4421, -79.9401)

	placed, err := order.NewOrder(
		id,
		"ORD-"+id.String()[:8],
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.NetworkFulfilled,
		order.Delivery,
		pickup,
		&dropoff,
		newPricing(t),
		createdAt,
	)
	require.NoError(t, err)
	return placed
}

func newMerchantOrder(t *testing.T) *order.Order {
	t.Helper()
	id := kernel.NewUUID()
	pickup := newWaypoint(t, "12 Campus Way", 40.4443, -79.9436)
	dropoff := newWaypoint(t, "300 Dorm Hall", 40.4421, -79.9401)

	placed, err := order.NewOrder(
		id,
		"ORD-"+id.String()[:8],
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.MerchantFulfilled,
		order.Delivery,
		pickup,
		&dropoff,
		newPricing(t),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return placed
}
