// Package main provides the game server binary that runs the multiplayer
// backend with a gRPC service for game client connections.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/deadshot465/demo-game/internal/auth"
	"github.com/deadshot465/demo-game/internal/config"
	"github.com/deadshot465/demo-game/internal/game/chat"
	"github.com/deadshot465/demo-game/internal/game/room"
	"github.com/deadshot465/demo-game/internal/gameserver"
	"github.com/deadshot465/demo-game/internal/gameserver/gamepb"
	"github.com/deadshot465/demo-game/internal/observability"
	"github.com/deadshot465/demo-game/internal/server"
	"github.com/deadshot465/demo-game/internal/storage/postgres"
	redisstore "github.com/deadshot465/demo-game/internal/storage/redis"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting game server",
		zap.String("grpc_addr", cfg.Server.Addr()),
	)

	// Connect to PostgreSQL for account persistence.
	dbStart := time.Now()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	logger.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.Duration("elapsed", time.Since(dbStart)),
	)
	players := postgres.NewPlayerRepository(pool.DB(), int32(cfg.Game.StartingCredits))

	// Connect to Redis for durable chat history.
	redisStart := time.Now()
	history, err := redisstore.New(ctx, cfg.Redis, cfg.Game.ChatHistorySize)
	if err != nil {
		logger.Fatal("connecting to redis", zap.Error(err))
	}
	logger.Info("redis connected",
		zap.String("addr", cfg.Redis.Addr),
		zap.Duration("elapsed", time.Since(redisStart)),
	)

	chatLog := chat.NewLog(logger, cfg.Game.ChatHistorySize, cfg.Game.SubscriberBuffer, history)
	if err := chatLog.Warm(ctx); err != nil {
		logger.Warn("warming chat history", zap.Error(err))
	}
	logger.Info("chat history warmed", zap.Int("messages", len(chatLog.History())))

	rooms := room.NewRegistry(logger, cfg.Game.RoomCapacity, cfg.Game.SubscriberBuffer)
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	grpcService := gameserver.NewGrpcServiceServer(verifier, players, chatLog, rooms, logger)

	grpcServer := grpc.NewServer()
	gamepb.RegisterGrpcServiceServer(grpcServer, grpcService)

	lifecycle := server.NewLifecycle(logger, cfg.Server.ShutdownTimeout)

	lifecycle.Add("grpc", &server.FuncService{
		StartFn: func() error {
			lis, err := net.Listen("tcp", cfg.Server.Addr())
			if err != nil {
				return fmt.Errorf("listening on %s: %w", cfg.Server.Addr(), err)
			}
			logger.Info("gRPC server listening",
				zap.String("addr", lis.Addr().String()),
			)
			return grpcServer.Serve(lis)
		},
		StopFn: func() {
			grpcServer.GracefulStop()
			chatLog.Close()
			if err := history.Close(); err != nil {
				logger.Warn("closing redis client", zap.Error(err))
			}
		},
	})

	lifecycle.Add("postgres", &server.FuncService{
		StartFn: func() error {
			for {
				time.Sleep(30 * time.Second)
				if err := pool.Health(ctx, 5*time.Second); err != nil {
					logger.Warn("database health check failed", zap.Error(err))
				}
			}
		},
		StopFn: func() {
			pool.Close()
		},
	})

	logger.Info("game server initialized",
		zap.Duration("startup", time.Since(start)),
		zap.String("grpc_addr", cfg.Server.Addr()),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
