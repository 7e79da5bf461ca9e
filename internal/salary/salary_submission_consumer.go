package salary

import (
	"context"
	"encoding/json"
	"fmt"

	"go-salary/internal/events"
	"go-salary/internal/shared/apperror"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafka.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// SubmissionConsumer feeds salary submissions from Kafka into Service.Submit.
type SubmissionConsumer struct {
	reader  MessageReader
	service Service
	logger  *zap.Logger
}

func NewSubmissionConsumer(reader MessageReader, service Service, logger ...*zap.Logger) *SubmissionConsumer {
	l := zap.L().Named("salary.consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.consumer")
	}

	return &SubmissionConsumer{reader: reader, service: service, logger: l}
}

// Run blocks until ctx is cancelled or a submission fails for a reason other
// than its content. In the latter case the message stays uncommitted and the
// error is returned, so the next consumer instance receives it again.
func (c *SubmissionConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("fetch salary submission failed", zap.Error(err))
			continue
		}

		if err := c.handle(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("salary submission at offset %d: %w", msg.Offset, err)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("commit salary submission failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}
	}
}

// handle returns nil when msg is finished with, including messages that are
// skipped because their content can never be applied. A conflict from a
// concurrent create is returned: redelivery applies it as an update.
func (c *SubmissionConsumer) handle(ctx context.Context, msg kafka.Message) error {
	var event events.SalarySubmissionRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		c.logger.Error("decode salary submission failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return nil
	}

	res, err := c.service.Submit(ctx, SubmitSalaryRequest{
		Name:                event.Name,
		Email:               event.Email,
		SalaryLocalCurrency: event.SalaryLocalCurrency,
		SalaryEuros:         event.SalaryEuros,
	})
	if err != nil {
		if apperror.IsValidation(err) {
			c.logger.Warn("invalid salary submission skipped",
				zap.String("email", event.Email),
				zap.Any("fields", apperror.ToHTTP(err).Details),
			)
			return nil
		}
		c.logger.Error("apply salary submission failed", zap.String("email", event.Email), zap.Error(err))
		return err
	}

	c.logger.Info("salary submission applied",
		zap.String("email", event.Email),
		zap.String("status", string(res.Status)),
	)
	return nil
}
