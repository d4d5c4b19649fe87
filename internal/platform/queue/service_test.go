package queue

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestQueue(t *testing.T) *RedisQueue {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisQueue(client)
}

func TestPublishConsumeRoundTrip(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	job := BookingNotification{
		BookingExtID:  "booking_abc",
		ClassTitle:    "Yoga",
		Date:          "2025-01-20",
		StartTime:     "10:00 AM",
		EndTime:       "12:00 PM",
		TraineeEmails: []string{"t1@x.com", "t2@x.com"},
	}

	if err := q.PublishBookingNotification(ctx, job); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	got, err := q.ConsumeBookingNotification(ctx)
	if err != nil {
		t.Fatalf("consume failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected a job, got nil")
	}
	if got.BookingExtID != job.BookingExtID || got.ClassTitle != job.ClassTitle {
		t.Fatalf("job corrupted in transit: %+v", got)
	}
	if len(got.TraineeEmails) != 2 {
		t.Fatalf("expected 2 recipients, got %d", len(got.TraineeEmails))
	}
}

func TestConsumeOrderIsFIFO(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	for _, id := range []string{"booking_1", "booking_2", "booking_3"} {
		if err := q.PublishBookingNotification(ctx, BookingNotification{BookingExtID: id}); err != nil {
			t.Fatalf("publish %s failed: %v", id, err)
		}
	}

	for _, want := range []string{"booking_1", "booking_2", "booking_3"} {
		got, err := q.ConsumeBookingNotification(ctx)
		if err != nil {
			t.Fatalf("consume failed: %v", err)
		}
		if got == nil || got.BookingExtID != want {
			t.Fatalf("expected %s, got %+v", want, got)
		}
	}
}

func TestConsumeCancelledContext(t *testing.T) {
	q := newTestQueue(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := q.ConsumeBookingNotification(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
