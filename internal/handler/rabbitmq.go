package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MichalMitros/car-tracker/internal/platform/rabbitmq"
	"github.com/MichalMitros/car-tracker/internal/scheduler"
	"github.com/MichalMitros/car-tracker/pkg/v1/commander"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Consumer --filename consumer.go
//go:generate mockery --name RunTrigger --filename run_trigger.go

// Consumer consumes messages from queue.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

// RunTrigger queues search runs.
type RunTrigger interface {
	Trigger(searchID int) error
}

// RMQHandler handles RMQ run commands.
type RMQHandler struct {
	consumer Consumer
	trigger  RunTrigger
	logger   *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(consumer Consumer, trigger RunTrigger, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		consumer: consumer,
		trigger:  trigger,
		logger:   logger,
	}
}

// Start starts consuming and handling run commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.consumer.Consume(ctx, queue, h.Handle)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

// Handle decodes run command and queues search run. Commands of already queued runs are ignored.
func (h *RMQHandler) Handle(_ context.Context, message []byte) error {
	cmd, err := decodeMessage(message)
	if err != nil {
		return err
	}

	err = h.trigger.Trigger(cmd.SearchID)
	if errors.Is(err, scheduler.ErrAlreadyQueued) {
		h.logger.Debug().
			Int("searchId", cmd.SearchID).
			Msg("run already queued")
		return nil
	}
	if err != nil {
		return fmt.Errorf("can't queue run of search %d: %w", cmd.SearchID, err)
	}

	h.logger.Debug().
		Int("searchId", cmd.SearchID).
		Msg("run queued")

	return nil
}

func decodeMessage(msg []byte) (*commander.RunCommand, error) {
	var cmd commander.RunCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode run command: %w", err)
	}

	return &cmd, nil
}
