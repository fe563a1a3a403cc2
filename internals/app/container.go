package app

import (
	"context"
	"errors"
	"fmt"

	"pulsewatch/config"
	"pulsewatch/internals/modules/monitor"
	"pulsewatch/internals/modules/sla"
	"pulsewatch/pkg/memcache"
	"pulsewatch/pkg/rabbitmq"
	"pulsewatch/pkg/redisstore"

	"github.com/go-co-op/gocron/v2"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

type Container struct {
	DB          *pgxpool.Pool
	RedisClient *redisstore.Client
	Logger      *zerolog.Logger
	Cfg         *config.Config

	slaSvc         *sla.Service
	slaHandler     *sla.Handler
	monitorHandler *monitor.Handler

	localCache *memcache.Store
	sweeper    gocron.Scheduler
	amqpConn   *amqp091.Connection
	consumer   *rabbitmq.Consumer
}

func NewContainer(ctx context.Context, db *pgxpool.Pool, cfg *config.Config, logger *zerolog.Logger) (*Container, error) {

	c := &Container{
		DB:     db,
		Logger: logger,
		Cfg:    cfg,
	}

	validate := validator.New()

	// metrics cache backend: in-process by default, redis when configured;
	// the service only ever sees sla.Cache
	var cache sla.Cache
	switch cfg.Cache.Backend {
	case "redis":
		redisClient, err := redisstore.New(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c.RedisClient = redisClient
		cache = redisClient
	default:
		c.localCache = memcache.New()
		cache = c.localCache
	}

	slaRepo := sla.NewRepository(db, logger)
	c.slaSvc = sla.NewService(slaRepo, cache, cfg.Cache.TTL, logger)
	c.slaHandler = sla.NewHandler(c.slaSvc, validate)

	monitorRepo := monitor.NewRepository(db, logger)
	monitorSvc := monitor.NewService(monitorRepo)
	c.monitorHandler = monitor.NewHandler(monitorSvc)

	// the local store needs a periodic sweep, abandoned keys are only
	// evicted lazily on read
	if c.localCache != nil {
		sweeper, err := gocron.NewScheduler()
		if err != nil {
			return nil, fmt.Errorf("create cache sweeper: %w", err)
		}
		_, err = sweeper.NewJob(
			gocron.DurationJob(cfg.Cache.SweepInterval),
			gocron.NewTask(func() {
				if n := c.localCache.Sweep(); n > 0 {
					logger.Debug().Int("evicted", n).Msg("cache sweep complete")
				}
			}),
		)
		if err != nil {
			return nil, fmt.Errorf("schedule cache sweep: %w", err)
		}
		c.sweeper = sweeper
	}

	// bulk data corrections upstream arrive as invalidation events
	if cfg.RabbitMQ != nil && cfg.RabbitMQ.BrokerLink != "" {
		conn, err := rabbitmq.NewConnection(cfg.RabbitMQ)
		if err != nil {
			return nil, err
		}
		if err := rabbitmq.SetupTopology(conn, cfg.RabbitMQ); err != nil {
			return nil, fmt.Errorf("setup rabbitmq topology: %w", err)
		}
		consumer, err := rabbitmq.NewConsumer(conn, cfg.RabbitMQ.QueueName, cfg.RabbitMQ.WorkerCount)
		if err != nil {
			return nil, err
		}
		c.amqpConn = conn
		c.consumer = consumer
	}

	return c, nil
}

// Start launches the background pieces: cache sweeper and invalidation consumer.
func (c *Container) Start(ctx context.Context) {
	if c.sweeper != nil {
		c.sweeper.Start()
	}

	if c.consumer != nil {
		handler := rabbitmq.NewInvalidationHandler(c.slaSvc, c.Logger)
		go func() {
			if err := c.consumer.Consume(ctx, handler); err != nil {
				c.Logger.Error().Err(err).Msg("invalidation consumer stopped")
			}
		}()
	}
}

func (c *Container) Shutdown(ctx context.Context) error {
	var errs []error

	if c.consumer != nil {
		if err := c.consumer.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if c.amqpConn != nil {
		if err := c.amqpConn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.sweeper != nil {
		if err := c.sweeper.Shutdown(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}

	return errors.Join(errs...)
}
