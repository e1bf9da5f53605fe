package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/batchrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllBatchesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllBatchesQueryHandler
}

func (suite *GetAllBatchesQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&batchrepo.BatchDTO{}, &orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllBatchesQueryHandler(db)
}

func (suite *GetAllBatchesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllBatchesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE batches, orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAllBatchesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllBatchesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllBatchesQueryHandlerTestSuite) TestHandle_WithBatches_ReturnsNewestValidationFirst() {
	older := suite.saveBatch(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), 1)
	newer := suite.saveBatch(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), 2)

	query := queries.NewGetAllBatchesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.True(result[0].ID.IsEqual(newer.ID()))
	suite.True(result[1].ID.IsEqual(older.ID()))
	suite.Equal(2, result[0].TotalCount)
	suite.Equal(1, result[1].TotalCount)
	suite.Equal(batch.StatusProposition, result[0].Status)
}

func (suite *GetAllBatchesQueryHandlerTestSuite) TestHandle_NestsMemberOrdersUnderBatch() {
	sold := suite.makeOrder("HILUX", "BLANC", true, nil)
	available := suite.makeOrder("COROLLA", "NOIR", false, decimalPtr(decimal.NewFromInt(45000)))
	loose := suite.makeOrder("YARIS", "ROUGE", false, nil)

	grouped, err := batch.NewBatch(
		kernel.NewUUID(),
		time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		[]*order.Order{sold, available},
	)
	suite.Require().NoError(err)

	suite.Require().NoError(sold.JoinBatch(grouped.ID()))
	suite.Require().NoError(available.JoinBatch(grouped.ID()))

	suite.Require().NoError(batchrepo.NewGormBatchRepository(suite.db, &noopAggregateTracker{}).
		Add(context.Background(), grouped))
	orderRepo := orderrepo.NewGormOrderRepository(suite.db, &noopAggregateTracker{})
	for _, o := range []*order.Order{sold, available, loose} {
		suite.Require().NoError(orderRepo.Add(context.Background(), o))
	}

	query := queries.NewGetAllBatchesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Require().Len(result[0].Orders, 2)

	models := make(map[string]queries.BatchOrderResponse)
	for _, member := range result[0].Orders {
		models[member.Model] = member
	}

	hilux, ok := models["HILUX"]
	suite.Require().True(ok)
	suite.True(hilux.ID.IsEqual(sold.ID()))
	suite.Equal(order.FlagVendue, hilux.Flag)
	suite.Equal(order.StatusValide, hilux.Status)
	suite.Empty(hilux.Price)

	corolla, ok := models["COROLLA"]
	suite.Require().True(ok)
	suite.Equal(order.FlagDisponible, corolla.Flag)
	price, err := decimal.NewFromString(corolla.Price)
	suite.Require().NoError(err)
	suite.True(price.Equal(decimal.NewFromInt(45000)))
}

func (suite *GetAllBatchesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllBatchesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetAllBatchesQueryIsNotConstructed)
}

func (suite *GetAllBatchesQueryHandlerTestSuite) makeOrder(
	model string,
	color string,
	sold bool,
	price *decimal.Decimal,
) *order.Order {
	spec, err := order.NewVehicleSpec(model, color, "DIESEL", "MANUELLE", 4)
	suite.Require().NoError(err)

	clientID := kernel.NewUUID()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		&clientID,
		nil,
		spec,
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		price,
	)
	suite.Require().NoError(err)

	if sold {
		o.MarkSold()
	}
	return o
}

func (suite *GetAllBatchesQueryHandlerTestSuite) saveBatch(
	validationDate time.Time,
	memberCount int,
) *batch.Batch {
	members := make([]*order.Order, 0, memberCount)
	for range memberCount {
		members = append(members, suite.makeOrder("HILUX", "BLANC", false, nil))
	}

	grouped, err := batch.NewBatch(kernel.NewUUID(), validationDate, members)
	suite.Require().NoError(err)

	err = batchrepo.NewGormBatchRepository(suite.db, &noopAggregateTracker{}).
		Add(context.Background(), grouped)
	suite.Require().NoError(err)

	return grouped
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestGetAllBatchesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllBatchesQueryHandlerTestSuite))
}

// noopAggregateTracker satisfies the repository tracker dependency; query
// tests have no unit of work to publish into.
type noopAggregateTracker struct{}

func (t *noopAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
