package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpin "supplychain/internal/adapters/in/http"
	"supplychain/internal/adapters/out/eventlog"
	"supplychain/internal/adapters/out/kafka"
	"supplychain/internal/adapters/out/memory"
	"supplychain/internal/adapters/out/postgres"
	rediscache "supplychain/internal/adapters/out/redis"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/ports"
	"supplychain/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	relay      ports.OutboxUnitOfWorkFactory
	readers    ports.Readers
	roles      ports.RoleReader
	publisher  ports.EventPublisher
	closers    []func() error
}

// NewCompositionRoot opens the configured storage backend and the optional role
// cache and Kafka publisher. Close releases them.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{cfg: cfg, logger: logger}

	switch cfg.Storage {
	case StoragePostgres:
		db, err := openPostgres(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, sqlDB.Close)
		factory := postgres.NewGormUnitOfWorkFactory(db)
		c.uowFactory = factory
		c.relay = factory
		c.readers = postgres.NewReaders(db)
	default:
		store := memory.NewStore()
		c.uowFactory = store
		c.relay = store
		c.readers = store
	}

	c.roles = c.readers.Roles()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		c.closers = append(c.closers, client.Close)
		c.roles = rediscache.NewRoleCache(client, c.roles, cfg.RoleCacheTTL, logger)
	}

	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaOrderEventsTopic)
		c.closers = append(c.closers, publisher.Close)
		c.publisher = publisher
	} else {
		c.publisher = eventlog.NewPublisher(logger)
	}

	logger.InfoContext(ctx, "Composition root ready",
		"storage", cfg.Storage,
		"role_cache", cfg.RedisAddr != "",
		"kafka", len(cfg.KafkaBrokers) > 0)
	return c, nil
}

func openPostgres(ctx context.Context, cfg Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(cfg.PostgresDSN()), &gorm.Config{
		Logger: gormlogger.New(
			slog.NewLogLogger(logger.With("component", "gorm").Handler(), slog.LevelWarn),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err = postgres.AutoMigrate(db.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return db, nil
}

// Close releases connections in reverse order of acquisition.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errList...)
}

func (c *CompositionRoot) CreateChooseRoleCommandHandler() commands.ChooseRoleCommandHandler {
	var f commands.RoleUoWFactory = FuncRoleUoWFactory(func() commands.RoleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChooseRoleCommandHandler(f)
}

func (c *CompositionRoot) registrationUoWFactory() commands.RegistrationUoWFactory {
	return FuncRegistrationUoWFactory(func() commands.RegistrationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterHerderCommandHandler() commands.RegisterHerderCommandHandler {
	return commands.NewRegisterHerderCommandHandler(c.registrationUoWFactory())
}

func (c *CompositionRoot) CreateRegisterSlaughterhouseCommandHandler() commands.RegisterSlaughterhouseCommandHandler {
	return commands.NewRegisterSlaughterhouseCommandHandler(c.registrationUoWFactory())
}

func (c *CompositionRoot) CreateRegisterTransporterCommandHandler() commands.RegisterTransporterCommandHandler {
	return commands.NewRegisterTransporterCommandHandler(c.registrationUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRequestTransportationCommandHandler() commands.RequestTransportationCommandHandler {
	var f commands.TransportationUoWFactory = FuncTransportationUoWFactory(func() commands.TransportationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestTransportationCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmTransportationRequestCommandHandler() commands.ConfirmTransportationRequestCommandHandler {
	return commands.NewConfirmTransportationRequestCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPickUpCommandHandler() commands.ConfirmPickUpCommandHandler {
	return commands.NewConfirmPickUpCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePublishOutboxCommandHandler() commands.PublishOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.relay.CreateOutbox()
	})
	return commands.NewPublishOutboxCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetUserRoleQueryHandler() queries.GetUserRoleQueryHandler {
	return queries.NewGetUserRoleQueryHandler(c.roles)
}

func (c *CompositionRoot) CreateGetHerderQueryHandler() queries.GetHerderQueryHandler {
	return queries.NewGetHerderQueryHandler(c.readers.Participants())
}

func (c *CompositionRoot) CreateGetSlaughterhouseQueryHandler() queries.GetSlaughterhouseQueryHandler {
	return queries.NewGetSlaughterhouseQueryHandler(c.readers.Participants())
}

func (c *CompositionRoot) CreateGetTransporterQueryHandler() queries.GetTransporterQueryHandler {
	return queries.NewGetTransporterQueryHandler(c.readers.Participants())
}

func (c *CompositionRoot) CreateGetParticipantIDQueryHandler() queries.GetParticipantIDQueryHandler {
	return queries.NewGetParticipantIDQueryHandler(c.readers.Participants())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readers.Orders())
}

func (c *CompositionRoot) CreateGetNextOrderIDQueryHandler() queries.GetNextOrderIDQueryHandler {
	return queries.NewGetNextOrderIDQueryHandler(c.readers.Sequences())
}

// CreateRouter wires every handler into the HTTP API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Commands{
		ChooseRole:                   c.CreateChooseRoleCommandHandler(),
		RegisterHerder:               c.CreateRegisterHerderCommandHandler(),
		RegisterSlaughterhouse:       c.CreateRegisterSlaughterhouseCommandHandler(),
		RegisterTransporter:          c.CreateRegisterTransporterCommandHandler(),
		PlaceOrder:                   c.CreatePlaceOrderCommandHandler(),
		ConfirmOrder:                 c.CreateConfirmOrderCommandHandler(),
		RequestTransportation:        c.CreateRequestTransportationCommandHandler(),
		ConfirmTransportationRequest: c.CreateConfirmTransportationRequestCommandHandler(),
		ConfirmPickUp:                c.CreateConfirmPickUpCommandHandler(),
		ConfirmDelivery:              c.CreateConfirmDeliveryCommandHandler(),
	}, httpin.Queries{
		GetUserRole:       c.CreateGetUserRoleQueryHandler(),
		GetHerder:         c.CreateGetHerderQueryHandler(),
		GetSlaughterhouse: c.CreateGetSlaughterhouseQueryHandler(),
		GetTransporter:    c.CreateGetTransporterQueryHandler(),
		GetParticipantID:  c.CreateGetParticipantIDQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetNextOrderID:    c.CreateGetNextOrderIDQueryHandler(),
	}, c.logger)
	return httpin.NewRouter(server, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	handler := c.CreatePublishOutboxCommandHandler()
	return jobs.NewJobManager(&handler, jobs.Config{
		OutboxSchedule:  c.cfg.OutboxSchedule,
		OutboxBatchSize: c.cfg.OutboxBatchSize,
	}, c.logger)
}

type FuncRoleUoWFactory func() commands.RoleUoW

func (f FuncRoleUoWFactory) Create() commands.RoleUoW {
	return f()
}

type FuncRegistrationUoWFactory func() commands.RegistrationUoW

func (f FuncRegistrationUoWFactory) Create() commands.RegistrationUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTransportationUoWFactory func() commands.TransportationUoW

func (f FuncTransportationUoWFactory) Create() commands.TransportationUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
