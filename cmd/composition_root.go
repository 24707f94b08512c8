package cmd

import (
	"log/slog"
	"time"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/mapping"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/rediscache"
	"logistics/internal/adapters/out/requestapi"
	"logistics/internal/adapters/out/resourceapi"
	"logistics/internal/adapters/out/restclient"
	"logistics/internal/core/application/outbox"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"
	"logistics/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	clock      func() time.Time

	resources  ports.ResourceService
	requests   ports.RequestService
	mapping    ports.MappingProvider
	dispatcher outbox.Dispatcher
}

// NewCompositionRoot wires the adapters around gormDB. A nil redisClient
// leaves the mapping provider uncached.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, redisClient redis.UniversalClient, logger *slog.Logger) CompositionRoot {
	c := CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		clock:      func() time.Time { return time.Now().UTC() },
	}

	c.resources = resourceapi.NewClient(
		restclient.New("resource-service", configs.ResourceServiceURL, configs.OutboundTimeout, logger),
	)
	c.requests = requestapi.NewClient(
		restclient.New("request-service", configs.RequestServiceURL, configs.OutboundTimeout, logger),
	)

	var provider ports.MappingProvider = mapping.NewClient(
		restclient.New("mapping-provider", configs.MappingAPIURL, configs.OutboundTimeout, logger),
		configs.MappingAPIKey,
		configs.MappingRatePerSecond,
	)
	if redisClient != nil {
		provider = rediscache.NewDistanceCache(redisClient, provider, configs.DistanceCacheTTL, logger)
	}
	c.mapping = provider

	c.dispatcher = outbox.NewDispatcher(
		c.resources,
		c.requests,
		FuncNotificationRepoFactoryProvider(func() outbox.NotificationRepoFactory {
			return c.uowFactory.Create()
		}),
		c.clock,
		logger,
		outbox.WithFailureHook(func(kind notification.Kind) {
			metrics.NotificationFailures.WithLabelValues(kind.String()).Inc()
		}),
	)

	return c
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCommitRouteCommandHandler() commands.CommitRouteCommandHandler {
	return commands.NewCommitRouteCommandHandler(c.commandUoWFactory(), c.requests, c.dispatcher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateAssignTruckCommandHandler() commands.AssignTruckCommandHandler {
	return commands.NewAssignTruckCommandHandler(c.commandUoWFactory(), c.resources, c.dispatcher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateStartLegCommandHandler() commands.StartLegCommandHandler {
	return commands.NewStartLegCommandHandler(
		c.commandUoWFactory(), c.CreateIsLegOwnerQueryHandler(), c.dispatcher, c.clock, c.logger,
	)
}

func (c *CompositionRoot) CreateFinishLegCommandHandler() commands.FinishLegCommandHandler {
	return commands.NewFinishLegCommandHandler(
		c.commandUoWFactory(), c.resources, c.CreateIsLegOwnerQueryHandler(), c.dispatcher, c.clock, c.logger,
	)
}

func (c *CompositionRoot) CreateGetRouteProposalsQueryHandler() queries.GetRouteProposalsQueryHandler {
	estimator := services.NewDistanceEstimator(c.mapping, c.logger, services.WithFallbackHook(metrics.DistanceFallbacks.Inc))
	generator := services.NewRouteProposalGenerator(estimator, c.logger)
	return queries.NewGetRouteProposalsQueryHandler(c.requests, c.resources, generator, c.logger)
}

func (c *CompositionRoot) CreateGetRouteQueryHandler() queries.GetRouteQueryHandler {
	return queries.NewGetRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTruckLegsQueryHandler() queries.GetTruckLegsQueryHandler {
	return queries.NewGetTruckLegsQueryHandler(c.gormDB)
}

// CreateIsLegOwnerQueryHandler reads routes outside of any transaction.
func (c *CompositionRoot) CreateIsLegOwnerQueryHandler() queries.IsLegOwnerQueryHandler {
	return queries.NewIsLegOwnerQueryHandler(c.uowFactory.Create().RouteRepository(), c.resources, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCommitRouteCommandHandler(),
		c.CreateAssignTruckCommandHandler(),
		c.CreateStartLegCommandHandler(),
		c.CreateFinishLegCommandHandler(),
		c.CreateGetRouteProposalsQueryHandler(),
		c.CreateGetRouteQueryHandler(),
		c.CreateGetTruckLegsQueryHandler(),
	)
}

// CreateJobManager schedules the notification replay job when it is enabled.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var scheduled []jobs.Job
	if c.configs.NotificationReplayEnabled {
		scheduled = append(scheduled, jobs.NewNotificationReplayJob(c.dispatcher, jobs.ReplayConfig{
			Schedule:    c.configs.NotificationReplaySchedule,
			Grace:       c.configs.NotificationReplayGrace,
			MaxAttempts: c.configs.NotificationMaxAttempts,
		}, c.logger))
	}
	return jobs.NewJobManager(c.logger, scheduled...)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncNotificationRepoFactoryProvider func() outbox.NotificationRepoFactory

func (f FuncNotificationRepoFactoryProvider) Create() outbox.NotificationRepoFactory {
	return f()
}
