package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/merojugx/mero/internal/infrastructure/auth"
	"github.com/merojugx/mero/internal/infrastructure/config"
	"github.com/merojugx/mero/internal/infrastructure/permission"
	"github.com/merojugx/mero/internal/infrastructure/ratelimit"
	"github.com/merojugx/mero/internal/infrastructure/scheduler"
	"github.com/merojugx/mero/internal/interfaces/http/middleware"
	"github.com/merojugx/mero/internal/shared/logger"
)

// Container holds infrastructure components, repositories, use cases and
// handlers, and owns the lifecycle of background services.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginRateLimiter     *middleware.RateLimitMiddleware

	jwtSvc           *auth.JWTService
	enforcer         *permission.Enforcer
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer wires every component against the given database. Redis is
// optional; when disabled the settings cache and login rate limit are skipped.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initUseCases()
	c.initHandlers()
	c.setupRoutes()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	cfg := c.cfg

	if cfg.Redis.Enabled {
		c.redis = initRedis(cfg, c.log)
	}

	c.repos = newRepositories(c.db, c.redis, cfg, c.log)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.repos.sessionRepo, c.log)

	enforcer, err := permission.NewEnforcer(c.db, c.log.Named("permission"))
	if err != nil {
		return err
	}
	c.enforcer = enforcer
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, c.log)

	if c.redis != nil && cfg.RateLimit.Enabled {
		rule := ratelimit.Rule{Limit: cfg.RateLimit.Limit, Window: cfg.RateLimit.Window()}
		c.loginRateLimiter = middleware.NewRateLimitMiddleware(ratelimit.NewRedisRateLimiter(c.redis), rule, c.log)
	}

	manager, err := scheduler.NewSchedulerManager(c.log.Named("scheduler"))
	if err != nil {
		return err
	}
	c.schedulerManager = manager
	return nil
}

// initRedis creates the client and checks the connection. An unreachable
// server is logged, not fatal: every Redis consumer falls back or fails open.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis is unreachable, continuing without it", "address", cfg.Redis.GetAddr(), "error", err)
	} else {
		log.Infow("redis connection established", "address", cfg.Redis.GetAddr())
	}
	return client
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Redis returns the shared client, or nil when Redis is disabled.
func (c *Container) Redis() *redis.Client {
	return c.redis
}

// Start registers and starts background jobs.
func (c *Container) Start() error {
	if err := c.schedulerManager.RegisterSessionCleanupJob(c.ucs.cleanupSessionsUC, c.cfg.Scheduler.SessionCleanupInterval()); err != nil {
		return err
	}
	c.schedulerManager.Start()
	return nil
}

// Shutdown stops background jobs and closes the Redis client.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil && c.schedulerManager.IsStarted() {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
