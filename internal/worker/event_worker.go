package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vilohq/vilo-api/internal/service"
	"github.com/vilohq/vilo-api/internal/service/queue"
	"github.com/vilohq/vilo-api/pkg/logger"
)

// EventWorker consumes booking events from the queue and runs their
// secondary effects. A failed event is left on the queue for redelivery.
type EventWorker struct {
	sqsService   *queue.SQSService
	effects      *service.BookingEffectsService
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewEventWorker(
	sqsService *queue.SQSService,
	effects *service.BookingEffectsService,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *EventWorker {
	return &EventWorker{
		sqsService:   sqsService,
		effects:      effects,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20,
		shutdownChan: make(chan struct{}),
	}
}

func (w *EventWorker) Start() {
	w.logger.Info("Starting Event workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *EventWorker) Stop() {
	w.logger.Info("Stopping Event workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All Event workers stopped")
}

func (w *EventWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Event Worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Event Worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processEvents(context.Background()); err != nil {
				w.logger.Errorf("Event Worker %d failed to process events: %v", workerID, err)
			}
		}
	}
}

func (w *EventWorker) processEvents(ctx context.Context) error {
	events, err := w.sqsService.ReceiveEvents(ctx, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive events: %w", err)
	}

	for _, received := range events {
		w.logger.Infof("Processing %s event for booking %s",
			received.Event.Type, received.Event.Booking.ID)

		// Effects are individually best-effort; the event as a whole is
		// considered handled once Apply returns.
		w.effects.Apply(ctx, received.Event)

		if err := w.sqsService.DeleteEvent(ctx, received.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete event: %v", err)
		}
	}

	return nil
}
