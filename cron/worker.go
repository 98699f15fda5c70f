package cron

import (
	"context"
	"encoding/json"
	"log"

	"wanderbook/config"
	"wanderbook/services/notification"
	"wanderbook/services/tasks"

	"github.com/hibiken/asynq"
)

// InitConfirmationWorker runs the async worker in background.
func InitConfirmationWorker(sender notification.EmailSender) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(tasks.TypeBookingConfirmation, handleConfirmationTask(sender))

	go func() {
		log.Println("[ConfirmationWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ConfirmationWorker] worker stopped: %v", err)
		}
	}()
}

func handleConfirmationTask(sender notification.EmailSender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ConfirmationWorker] invalid payload: %v", err)
			return err
		}
		return sender.SendConfirmation(ctx, p)
	}
}
