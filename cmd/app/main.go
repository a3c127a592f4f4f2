package main

import (
	"fmt"
	"net/http"
	"os"

	"shipping/cmd"
	httpin "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres/courierrepo"
	"shipping/internal/adapters/out/postgres/deliveryrepo"
	"shipping/internal/adapters/out/postgres/filerepo"
	"shipping/internal/adapters/out/postgres/jobrepo"
	"shipping/internal/adapters/out/postgres/problemrepo"
	"shipping/internal/adapters/out/postgres/recipientrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := connectDB(configs)
	migrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
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

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&problemrepo.ProblemDTO{},
		&courierrepo.CourierDTO{},
		&recipientrepo.RecipientDTO{},
		&filerepo.SignatureDTO{},
		&jobrepo.JobDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateAdmitDeliveryCommandHandler(),
		app.CreateRegisterShipmentCommandHandler(),
		app.CreateStartDeliveryCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateEditDeliveryCommandHandler(),
		app.CreateCancelDeliveryCommandHandler(),
		app.CreateReportProblemCommandHandler(),
		app.CreateResolveProblemCommandHandler(),
		app.CreateListDeliveriesQueryHandler(),
		app.CreateListCourierDeliveriesQueryHandler(),
		app.CreateListProblemsQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
