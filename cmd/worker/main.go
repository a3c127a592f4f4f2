package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shipping/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// The worker drains the notification job queue. It shares the configuration
// and composition root with the API binary but starts only the scheduled jobs.
func main() {
	configs := getConfigs()

	gormDB := connectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)
	jobManager := app.CreateJobManager()

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	waitForShutdown()
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		OfficeHourStart:       goDotEnvVariable("OFFICE_HOUR_START"),
		OfficeHourEnd:         goDotEnvVariable("OFFICE_HOUR_END"),
		MaxDeliveriesPerDay:   goDotEnvVariable("MAX_DELIVERIES_DAY"),
		MinProblemDescription: goDotEnvVariable("MIN_PROBLEM_DESCRIPTION"),
		NotificationStrategy:  goDotEnvVariable("NOTIFICATION_STRATEGY"),
		SMTPHost:              goDotEnvVariable("SMTP_HOST"),
		SMTPPort:              goDotEnvVariable("SMTP_PORT"),
		SMTPUser:              goDotEnvVariable("SMTP_USER"),
		SMTPPassword:          goDotEnvVariable("SMTP_PASSWORD"),
		SMTPFrom:              goDotEnvVariable("SMTP_FROM"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func waitForShutdown() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}
