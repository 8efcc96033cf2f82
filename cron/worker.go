// File: cron/worker.go
package cron

import (
	"context"
	"log"
	"time"

	"boatify/config"
	"boatify/services/reservation"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeReservationSweep = "reservation:sweep"

// InitSweepWorker runs the stale-reservation sweep in the background: a
// nightly scheduled run plus one immediate run at boot so a restart never
// delays the sweep by a full day. Both triggers execute the same task.
func InitSweepWorker(resSvc reservation.ReservationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReservationSweep, handleSweepTask(resSvc))

	go monitorRedisConnection()

	// Start async worker with retry logic.
	go func() {
		log.Println("[SweepWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SweepWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SweepWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	// Nightly schedule at midnight.
	go func() {
		scheduler := asynq.NewScheduler(redisOpts, nil)
		task := asynq.NewTask(TypeReservationSweep, nil)
		if _, err := scheduler.Register("0 0 * * *", task); err != nil {
			log.Printf("[SweepWorker] Failed to register sweep schedule: %v", err)
			return
		}
		if err := scheduler.Run(); err != nil {
			log.Printf("[SweepWorker] Scheduler stopped: %v", err)
		}
	}()

	// One immediate run at startup.
	go func() {
		client := asynq.NewClient(redisOpts)
		defer client.Close()
		if _, err := client.Enqueue(asynq.NewTask(TypeReservationSweep, nil)); err != nil {
			log.Printf("[SweepWorker] Failed to enqueue startup sweep: %v", err)
		}
	}()
}

// handleSweepTask runs one sweep pass. Failures are logged and swallowed so
// a bad pass waits for the next trigger instead of retrying hot.
func handleSweepTask(resSvc reservation.ReservationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		count, err := resSvc.SweepStalePending()
		if err != nil {
			log.Printf("[SweepHandler] Sweep failed: %v", err)
			return nil
		}
		log.Printf("[SweepHandler] Sweep complete: %d reservations timed out", count)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at
// runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[SweepWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
