package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"kioskhub/internal/adapters/out/postgres"
	"kioskhub/internal/adapters/out/postgres/orderrepo"
	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/core/domain/model/order"
	"kioskhub/internal/pkg/errs"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics and the
// maintenance behavior of the pool against a real PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	pool      *postgres.Pool
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "5432")
	suite.Require().NoError(err)

	suite.pool = postgres.NewPool(postgres.Config{
		Host:     host,
		Port:     port.Port(),
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
		SSLMode:  "disable",
	})
	suite.Require().NoError(suite.pool.Open())
	suite.Require().NoError(suite.pool.Migrate())

	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.pool)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	db, err := suite.pool.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(db.Exec("TRUNCATE TABLE orders, order_items, items, kiosks").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	line, err := order.NewLine(7, nil)
	suite.Require().NoError(err)
	aggregate, err := order.NewOrder(5, kernel.KioskTypeJuice, "", nil, []order.Line{line})
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) orderCount() int64 {
	db, err := suite.pool.DB()
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsWork() {
	ctx := context.Background()

	uow, err := suite.factory.Create()
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder()))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWork() {
	ctx := context.Background()

	uow, err := suite.factory.Create()
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder()))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Zero(suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackWithoutBegin_IsNoOp() {
	uow, err := suite.factory.Create()
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Rollback(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	uow, err := suite.factory.Create()
	suite.Require().NoError(err)
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCreate_FailsWhilePoolClosed() {
	suite.Require().NoError(suite.pool.Close())
	defer func() {
		suite.Require().NoError(suite.pool.Open())
	}()

	_, err := suite.factory.Create()
	suite.Require().ErrorIs(err, errs.ErrDatabaseDisconnected)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
