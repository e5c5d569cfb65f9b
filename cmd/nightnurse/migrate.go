package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"nightnurse/internal/db"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var migrateCommand = &cli.Command{
	Name:   "migrate",
	Usage:  "Apply pending database migrations and exit",
	Action: migrate,
}

func migrate(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig(logger)
	if err != nil {
		return err
	}

	if err := db.Migrate(ctx, config.DatabaseURL); err != nil {
		return err
	}

	logger.Info("migrations applied")
	return nil
}
