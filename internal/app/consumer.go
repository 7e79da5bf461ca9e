package app

import (
	"context"
	"os/signal"
	"syscall"

	"go-salary/internal/config"
	"go-salary/internal/salary"
	"go-salary/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer applies salary submissions from Kafka until SIGINT/SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.ConnRetries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	reader, err := connection.ConnectKafkaReaderWithRetry(cfg.Kafka, cfg.ConnRetries)
	if err != nil {
		return err
	}
	defer reader.Close()

	salaryService := salary.NewService(salary.NewRepository(gormDB), logger)
	submissions := salary.NewSubmissionConsumer(reader, salaryService, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("salary submission consumer started",
		zap.String("topic", cfg.Kafka.SubmissionTopic),
		zap.String("group_id", cfg.Kafka.GroupID),
	)
	if err := submissions.Run(ctx); err != nil {
		logger.Error("salary submission consumer stopped", zap.Error(err))
		return err
	}

	logger.Info("consumer shutting down")
	return nil
}
