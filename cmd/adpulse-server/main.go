package main

import (
	"context"
	"net/http"
	"time"

	zlog "github.com/rs/zerolog/log"

	rediscache "github.com/adpulse/adpulse/internal/cache/redis"
	"github.com/adpulse/adpulse/internal/config"
	"github.com/adpulse/adpulse/internal/logger"
	rabbitpub "github.com/adpulse/adpulse/internal/messaging/rabbitmq"
	"github.com/adpulse/adpulse/internal/ml"
	"github.com/adpulse/adpulse/internal/service"
	"github.com/adpulse/adpulse/internal/store"
	"github.com/adpulse/adpulse/internal/store/memory"
	"github.com/adpulse/adpulse/internal/store/postgres"
	"github.com/adpulse/adpulse/internal/transport/http/router"
)

type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("config load failed")
	}

	// storage: postgres when configured, the in-memory store otherwise
	// (the demo runs fine without any infrastructure)
	var st store.Store
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		pg, err := postgres.Connect(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			zlog.Fatal().Err(err).Msg("postgres connect failed")
		}
		defer pg.Close()
		st = pg
		zlog.Info().Msg("postgres store ready")
	} else {
		st = memory.New()
		zlog.Warn().Msg("DATABASE_URL empty: using in-memory store")
	}

	var cache service.PredictionCache
	if cfg.RedisURL != "" {
		c, err := rediscache.New(cfg.RedisURL, cfg.CacheTTLPrediction)
		if err != nil {
			zlog.Fatal().Err(err).Msg("redis connect failed")
		}
		defer c.Close()
		cache = c
		zlog.Info().Dur("ttl", cfg.CacheTTLPrediction).Msg("prediction cache ready")
	}

	var pub service.EventPublisher
	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			zlog.Fatal().Err(err).Msg("rabbit publisher init failed")
		}
		defer p.Close()
		pub = p
		zlog.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: interaction events will not be published")
	}

	classifier := ml.NewClassifier(cfg.ModelPath)
	svc := service.New(st, classifier, cache, pub, sysClock{})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router.New(svc, cfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal().Err(err).Msg("server crashed")
	}
}
