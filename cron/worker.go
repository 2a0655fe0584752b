package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"clinicore/config"
	appointmentRepo "clinicore/database/repository/appointment"
	"clinicore/models"
	"clinicore/services/notification"
	"clinicore/services/scheduling"
	"clinicore/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService, appts appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc, appts))

	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService, appts appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		appt, err := appts.GetByID(ctx, p.AppointmentID)
		if err != nil {
			var notFound *scheduling.NotFoundError
			if errors.As(err, &notFound) {
				log.Printf("[ReminderHandler] Appointment %s no longer exists, dropping reminder", p.AppointmentID)
				return nil
			}
			return err
		}
		if !reminderStillCurrent(appt, p) {
			log.Printf("[ReminderHandler] Appointment %s is %s or has moved, dropping reminder", appt.ID, appt.Status)
			return nil
		}

		log.Printf("[ReminderHandler] Triggering reminder for %s %s: %s", p.Target, p.ID, p.Title)

		data := map[string]string{
			"appointmentId": p.AppointmentID,
			"fireDate":      p.FireDate,
			"title":         p.Title,
			"body":          p.Body,
		}

		switch p.Target {
		case "patient":
			err = notifSvc.SendPatientPushNotification(ctx, p.ID, p.Title, p.Body, data)
		case "therapist":
			err = notifSvc.SendTherapistPushNotification(ctx, p.ID, p.Title, p.Body, data)
		default:
			log.Printf("[ReminderHandler] Unknown target type: %s", p.Target)
			return nil
		}

		if err != nil {
			log.Printf("[ReminderHandler] Failed to send notification: %v", err)
		}
		return err
	}
}

// reminderStillCurrent reports whether a queued reminder still matches the
// appointment it was scheduled for. Cancelled and completed appointments get
// no reminder, and rescheduling enqueues a fresh task, so the old one is
// dropped when the start time no longer matches the payload.
func reminderStillCurrent(appt *models.Appointment, p models.ReminderPayload) bool {
	if !appt.Status.Active() {
		return false
	}
	if p.StartsAt == "" {
		return true
	}
	queuedFor, err := time.Parse(time.RFC3339, p.StartsAt)
	if err != nil {
		return true
	}
	return appt.Interval.Start.Equal(queuedFor)
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
