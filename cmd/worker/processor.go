package main

import (
	"context"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"github.com/adityapratama/gymflow/internal/platform/queue"
)

// NotificationProcessor drains booking-confirmation jobs from the queue and
// delivers them. Delivery is currently a structured log line; a mail sender
// can slot in behind deliver without touching the loop.
type NotificationProcessor struct {
	queueService queue.QueueService
}

func NewNotificationProcessor(queueService queue.QueueService) *NotificationProcessor {
	return &NotificationProcessor{queueService: queueService}
}

// Start consumes jobs until the context is cancelled.
func (p *NotificationProcessor) Start(ctx context.Context) error {
	zlog.Info().Msg("Notification processor started, waiting for booking jobs...")

	for {
		select {
		case <-ctx.Done():
			zlog.Info().Msg("Notification processor stopped")
			return ctx.Err()
		default:
			job, err := p.queueService.ConsumeBookingNotification(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				zlog.Error().Err(err).Msg("Error consuming notification job")
				continue
			}

			if job == nil {
				// Queue was empty, poll again.
				continue
			}

			p.deliver(job)
		}
	}
}

func (p *NotificationProcessor) deliver(job *queue.BookingNotification) {
	zlog.Info().
		Str("booking_id", job.BookingExtID).
		Str("class", job.ClassTitle).
		Str("date", job.Date).
		Str("slot", job.StartTime+" - "+job.EndTime).
		Str("recipients", strings.Join(job.TraineeEmails, ",")).
		Msg("Booking confirmation delivered")
}
