// File: glossify/main.go
//
// The booking wizard itself is a library; this binary runs the reminder
// worker that delivers scheduled notifications for confirmed bookings.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"glossify/config"
	"glossify/cron"
	"glossify/services/notification"
	"glossify/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	notificationService, err := notification.NewDefaultNotificationService(
		config.AppConfig.NotifyAPIBaseURL,
		config.AppConfig.NotifyAPIKey,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	cron.InitReminderWorker(notificationService)

	logger.Sugar().Infof("glossify reminder worker running (env=%s)", config.GetEnv())

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: worker shutting down...")
}
