package fundsmonitor

import (
	"context"
	"log"
	"time"

	"rollupbridge/internal/application/dto"
	portsin "rollupbridge/internal/application/ports/in"
)

// Worker drives the funds message machine in the background. It polls the
// evaluate use case until the session's message reaches a terminal state and
// keeps polling afterwards so a session reset picks evaluation back up.
type Worker struct {
	enabled      bool
	pollInterval time.Duration
	useCase      portsin.EvaluateFundsMessageUseCase
	logger       *log.Logger
}

func NewWorker(
	enabled bool,
	pollInterval time.Duration,
	useCase portsin.EvaluateFundsMessageUseCase,
	logger *log.Logger,
) *Worker {
	return &Worker{
		enabled:      enabled,
		pollInterval: pollInterval,
		useCase:      useCase,
		logger:       logger,
	}
}

func (w *Worker) Enabled() bool {
	return w != nil && w.enabled
}

func (w *Worker) Start(ctx context.Context) {
	if w == nil || !w.enabled || w.useCase == nil {
		return
	}

	w.logf("funds monitor started poll_interval=%s", w.pollInterval)

	lastState := w.runCycle(ctx, "")
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logf("funds monitor stopped")
			return
		case <-ticker.C:
			lastState = w.runCycle(ctx, lastState)
		}
	}
}

func (w *Worker) runCycle(ctx context.Context, lastState string) string {
	output, appErr := w.useCase.Execute(ctx, dto.EvaluateFundsMessageCommand{})
	if appErr != nil {
		w.logf("funds message evaluation failed code=%s message=%s", appErr.Code, appErr.Message)
		return lastState
	}

	if output.State != lastState {
		w.logf("funds message state=%s refreshed=%t", output.State, output.Refreshed)
	}
	return output.State
}

func (w *Worker) logf(format string, args ...any) {
	if w.logger == nil {
		return
	}
	w.logger.Printf(format, args...)
}
