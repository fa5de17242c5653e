package cmd

import (
	"log/slog"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/tokenrepo"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"
	"fooddelivery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.ServerMetrics
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	serverMetrics *metrics.ServerMetrics,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, config.KafkaOrderChangedTopic),
		metrics:    serverMetrics,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewOrderPricer())
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkReadyCommandHandler() commands.MarkReadyCommandHandler {
	return commands.NewMarkReadyCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(publisher ports.MessagePublisher) commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, publisher)
}

func (c *CompositionRoot) CreatePurgeExpiredTokensCommandHandler() commands.PurgeExpiredTokensCommandHandler {
	var f commands.AccessTokenUoWFactory = FuncAccessTokenUoWFactory(func() commands.AccessTokenUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeExpiredTokensCommandHandler(f)
}

func (c *CompositionRoot) CreateListReadyOrdersQueryHandler() queries.ListReadyOrdersQueryHandler {
	return queries.NewListReadyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLatestConsumerOrderQueryHandler() queries.GetLatestConsumerOrderQueryHandler {
	return queries.NewGetLatestConsumerOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLatestCourierOrderQueryHandler() queries.GetLatestCourierOrderQueryHandler {
	return queries.NewGetLatestCourierOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRestaurantsQueryHandler() queries.ListRestaurantsQueryHandler {
	return queries.NewListRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMealsQueryHandler() queries.ListMealsQueryHandler {
	return queries.NewListMealsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuthContext() ports.AuthContext {
	return tokenrepo.NewGormAccessTokenRepository(c.gormDB)
}

// CreateRouter assembles the HTTP server with every handler wired.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		ClaimOrder:          c.CreateClaimOrderCommandHandler(),
		MarkDelivered:       c.CreateMarkDeliveredCommandHandler(),
		MarkReady:           c.CreateMarkReadyCommandHandler(),
		ListReadyOrders:     c.CreateListReadyOrdersQueryHandler(),
		LatestConsumerOrder: c.CreateGetLatestConsumerOrderQueryHandler(),
		LatestCourierOrder:  c.CreateGetLatestCourierOrderQueryHandler(),
		ListRestaurants:     c.CreateListRestaurantsQueryHandler(),
		ListMeals:           c.CreateListMealsQueryHandler(),
	}, c.metrics)

	return httpin.NewRouter(server, httpin.RouterConfig{
		Auth:           c.CreateAuthContext(),
		Metrics:        c.metrics,
		Logger:         c.logger,
		RequestTimeout: c.config.RequestTimeout,
	})
}

// CreateJobManager wires the background jobs. With a nil publisher the
// outbox relay is not scheduled.
func (c *CompositionRoot) CreateJobManager(publisher ports.MessagePublisher) *jobs.JobManager {
	var relayJob *jobs.OutboxRelayJob
	if publisher != nil {
		relayJob = jobs.NewOutboxRelayJob(
			c.CreateRelayOutboxCommandHandler(publisher),
			c.config.OutboxBatchSize,
			c.metrics.OutboxRelayed,
			c.logger,
		)
	}

	return jobs.NewJobManager(
		relayJob,
		jobs.NewTokenCleanupJob(c.CreatePurgeExpiredTokensCommandHandler(), c.logger),
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncAccessTokenUoWFactory func() commands.AccessTokenUoW

func (f FuncAccessTokenUoWFactory) Create() commands.AccessTokenUoW {
	return f()
}
