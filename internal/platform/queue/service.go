package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const notificationQueue = "notifications:bookings"

// QueueService defines the interface for queue operations
type QueueService interface {
	PublishBookingNotification(ctx context.Context, job BookingNotification) error
	ConsumeBookingNotification(ctx context.Context) (*BookingNotification, error)
}

// BookingNotification is the message published after a successful booking,
// consumed by the notification worker.
type BookingNotification struct {
	BookingExtID  string   `json:"booking_ext_id"`
	ClassTitle    string   `json:"class_title"`
	Date          string   `json:"date"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	TraineeEmails []string `json:"trainee_emails"`
}

type RedisQueue struct {
	client *redis.Client
}

func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{client: client}
}

func (q *RedisQueue) PublishBookingNotification(ctx context.Context, job BookingNotification) error {
	jobData, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	if err := q.client.LPush(ctx, notificationQueue, jobData).Err(); err != nil {
		return fmt.Errorf("failed to push job to queue: %w", err)
	}

	return nil
}

// ConsumeBookingNotification pops one job from the queue. It blocks for at
// most five seconds so the caller can observe context cancellation; a nil job
// with nil error means the queue was empty.
func (q *RedisQueue) ConsumeBookingNotification(ctx context.Context) (*BookingNotification, error) {
	result, err := q.client.BRPop(ctx, 5*time.Second, notificationQueue).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("failed to pop job from queue: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid queue response")
	}

	var job BookingNotification
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}

	return &job, nil
}
