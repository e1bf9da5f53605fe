package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/core/application/usecases/queries"
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

type GetClientVehiclesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetClientVehiclesQueryHandler
}

func (suite *GetClientVehiclesQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetClientVehiclesQueryHandler(db)
}

func (suite *GetClientVehiclesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetClientVehiclesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetClientVehiclesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetClientVehiclesQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetClientVehiclesQueryHandlerTestSuite) TestHandle_FiltersByClientAndOrdersByDeliveryDate() {
	clientID := kernel.NewUUID()
	otherClientID := kernel.NewUUID()

	october := suite.saveOrder(clientID, "HILUX", time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), nil)
	september := suite.saveOrder(clientID, "COROLLA", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		decimalPtr(decimal.NewFromInt(38000)))
	suite.saveOrder(otherClientID, "YARIS", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), nil)

	query, err := queries.NewGetClientVehiclesQuery(clientID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.True(result[0].ID.IsEqual(september.ID()))
	suite.Equal("COROLLA", result[0].Model)
	price, err := decimal.NewFromString(result[0].Price)
	suite.Require().NoError(err)
	suite.True(price.Equal(decimal.NewFromInt(38000)))

	suite.True(result[1].ID.IsEqual(october.ID()))
	suite.Equal("HILUX", result[1].Model)
	suite.Empty(result[1].Price)
	suite.Equal(order.StatusProposition, result[1].Status)
	suite.Equal(order.FlagDisponible, result[1].Flag)
}

func (suite *GetClientVehiclesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetClientVehiclesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetClientVehiclesQueryIsNotConstructed)
}

func (suite *GetClientVehiclesQueryHandlerTestSuite) saveOrder(
	clientID kernel.UUID,
	model string,
	deliveryDate time.Time,
	price *decimal.Decimal,
) *order.Order {
	spec, err := order.NewVehicleSpec(model, "BLANC", "DIESEL", "MANUELLE", 4)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), &clientID, nil, spec, deliveryDate, price)
	suite.Require().NoError(err)

	err = orderrepo.NewGormOrderRepository(suite.db, &noopAggregateTracker{}).
		Add(context.Background(), o)
	suite.Require().NoError(err)

	return o
}

func TestGetClientVehiclesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetClientVehiclesQueryHandlerTestSuite))
}
