package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"hungrytiger.com/server/config"
	"hungrytiger.com/server/logger"
	"hungrytiger.com/server/network"
)

var (
	configPath = flag.String("config", "", "path to a YAML config file")
	addr       = flag.String("addr", "", "http service address, overrides the config")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		zap.NewExample().Fatal("load config", zap.Error(err))
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		zap.NewExample().Fatal("build logger", zap.Error(err))
	}
	defer log.Sync()

	hub, err := network.NewHub(cfg, log)
	if err != nil {
		log.Fatal("create hub", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go hub.Run(ctx)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: network.NewRouter(hub)}

	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	log.Info("server running", zap.String("url", "http://localhost"+cfg.Server.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("ListenAndServe", zap.Error(err))
	}
}
