// gRPC server - баланс и история транзакций карты
package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	serv "github.com/glkeru/loyalty/cards/internal/api/grpc"
	"github.com/glkeru/loyalty/cards/internal/app"
	"github.com/glkeru/loyalty/cards/internal/config"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	cfg, err := config.Load[config.GRPCServer]()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	stores, err := app.Open(ctx, logger, cfg.Postgres, cfg.Mongo, cfg.Cache)
	if err != nil {
		logger.Fatal("storage", zap.Error(err))
	}
	defer stores.Close(context.Background())

	lis, err := net.Listen("tcp", "0.0.0.0:"+cfg.Port)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	interrrupt := make(chan os.Signal, 1)
	signal.Notify(interrrupt, os.Interrupt, syscall.SIGTERM)

	grpcServer := grpc.NewServer()
	serv.RegisterCardsServer(grpcServer, serv.NewCardsService(stores.Service(logger, 1), logger))

	go func() {
		err := grpcServer.Serve(lis)
		if err != nil {
			logger.Fatal("gRPC server failed", zap.Error(err))
		}
	}()

	<-interrrupt
	grpcServer.GracefulStop()
}
