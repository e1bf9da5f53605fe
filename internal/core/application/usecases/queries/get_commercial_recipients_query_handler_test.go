package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCommercialRecipientsQueryHandlerTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCommercialRecipientsQueryHandler
}

func (suite *GetCommercialRecipientsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	err = db.AutoMigrate(&postgres.UserDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCommercialRecipientsQueryHandler(db)
}

func (suite *GetCommercialRecipientsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCommercialRecipientsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE users CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetCommercialRecipientsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetCommercialRecipientsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCommercialRecipientsQueryHandlerTestSuite) TestHandle_ReturnsOnlyCommercialUsersOrderedByName() {
	suite.saveUser("Claire", "claire@example.com", "COMMERCIAL")
	suite.saveUser("Antoine", "antoine@example.com", "COMMERCIAL")
	suite.saveUser("Bruno", "bruno@example.com", "MAGASINIER")

	query := queries.NewGetCommercialRecipientsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("Antoine", result[0].Name)
	suite.Equal("antoine@example.com", result[0].Email)
	suite.Equal("Claire", result[1].Name)
	suite.Equal("claire@example.com", result[1].Email)
}

func (suite *GetCommercialRecipientsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCommercialRecipientsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetCommercialRecipientsQueryIsNotConstructed)
}

func (suite *GetCommercialRecipientsQueryHandlerTestSuite) saveUser(name, email, role string) {
	user := postgres.UserDTO{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
		Role:  role,
	}
	err := suite.db.Create(&user).Error
	suite.Require().NoError(err)
}

func TestGetCommercialRecipientsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCommercialRecipientsQueryHandlerTestSuite))
}
