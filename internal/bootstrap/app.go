package bootstrap

import (
	"context"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Alisacalm/Yatube/internal/config"
	"github.com/Alisacalm/Yatube/internal/media"
	"github.com/Alisacalm/Yatube/internal/model"
	mysqlClient "github.com/Alisacalm/Yatube/internal/platform/mysql"
	redisClient "github.com/Alisacalm/Yatube/internal/platform/redis"
	"github.com/Alisacalm/Yatube/internal/session"
)

type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Redis    *redisv9.Client
	Sessions *session.Store
	Media    *media.Store

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	db, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mediaStore, err := media.NewStore(cfg.Media.Root)
	if err != nil {
		return nil, err
	}

	sessions := session.NewStore(redisCli, time.Duration(cfg.Session.TTLHours)*time.Hour)

	return &App{
		Config:    cfg,
		DB:        db,
		Redis:     redisCli,
		Sessions:  sessions,
		Media:     mediaStore,
		StartedAt: time.Now(),
	}, nil
}

func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Post{},
		&model.Comment{},
		&model.Follow{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate tables failed: %w", err)
	}
	return nil
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
