package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"innkeep/config"
	bookingRepo "innkeep/database/repository/booking"
	"innkeep/models"
	"innkeep/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypePaymentReminder = "payment:reminder"

// PaymentReminderDelay is how long an opened payment session may sit before
// the customer gets nudged.
const PaymentReminderDelay = 15 * time.Minute

// PaymentReminderPayload is the task body queued when a payment session opens.
type PaymentReminderPayload struct {
	BookingID  string `json:"bookingId"`
	CustomerID string `json:"customerId"`
	Amount     int    `json:"amount"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// ReminderClient enqueues payment reminders. It satisfies the booking
// service's ReminderScheduler.
type ReminderClient struct {
	client *asynq.Client
}

// NewReminderClient creates a queue client on the configured Redis.
func NewReminderClient() *ReminderClient {
	return &ReminderClient{client: asynq.NewClient(redisOpts())}
}

// SchedulePaymentReminder queues a delayed nudge for an unpaid booking.
func (rc *ReminderClient) SchedulePaymentReminder(session models.PaymentSession) error {
	payload, err := json.Marshal(PaymentReminderPayload{
		BookingID:  session.BookingID,
		CustomerID: session.CustomerID,
		Amount:     session.Amount,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypePaymentReminder, payload)
	if _, err := rc.client.Enqueue(task, asynq.ProcessIn(PaymentReminderDelay)); err != nil {
		return fmt.Errorf("failed to enqueue payment reminder: %w", err)
	}
	return nil
}

// InitPaymentReminderWorker runs the async worker in background.
func InitPaymentReminderWorker(bookings bookingRepo.BookingRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePaymentReminder, handlePaymentReminder(bookings))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[ReminderWorker] failed to start worker: %v", err)
		}
	}()
}

func handlePaymentReminder(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p PaymentReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			return fmt.Errorf("invalid reminder payload: %w", err)
		}

		booking, err := bookings.GetByID(p.BookingID)
		if err != nil {
			return err
		}
		if booking == nil || booking.PaymentStatus || booking.Status == models.StatusRejected {
			// Settled, canceled or gone; nothing to nudge.
			return nil
		}

		// Delivery (mail/push) is handled outside this service; the event is
		// logged here for the notification pipeline to pick up.
		utils.GetLogger().Info("payment still outstanding",
			zap.String("bookingID", p.BookingID),
			zap.String("customerID", p.CustomerID),
			zap.Int("amount", p.Amount))
		return nil
	}
}
