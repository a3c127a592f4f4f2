package cmd

import (
	"log/slog"
	"strconv"

	"shipping/internal/adapters/out/mail"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/postgres/jobrepo"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/problem"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/jobs"
	"shipping/internal/notifications"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// notificationStrategyDirect selects inline mail sending instead of the
// default database-backed queue.
const notificationStrategyDirect = "direct"

type CompositionRoot struct {
	configs               Config
	gormDB                *gorm.DB
	uowFactory            postgres.GormUnitOfWorkFactory
	officeHours           kernel.OfficeHours
	quota                 services.QuotaChecker
	jobQueue              *jobrepo.GormJobRepository
	dispatcher            notifications.Dispatcher
	minProblemDescription int
	logger                *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.Default()

	officeHours, err := kernel.NewOfficeHours(configs.OfficeHourStart, configs.OfficeHourEnd)
	if err != nil {
		log.Fatalf("Invalid office hours configuration: %v", err)
	}

	jobQueue := jobrepo.NewGormJobRepository(gormDB)

	return CompositionRoot{
		configs:               configs,
		gormDB:                gormDB,
		uowFactory:            *postgres.NewGormUnitOfWorkFactory(gormDB),
		officeHours:           officeHours,
		quota:                 services.NewQuotaChecker(intConfig(configs.MaxDeliveriesPerDay, services.DefaultMaxDeliveriesPerDay)),
		jobQueue:              jobQueue,
		dispatcher:            newDispatcher(configs, jobQueue, logger),
		minProblemDescription: intConfig(configs.MinProblemDescription, problem.DefaultMinDescriptionLength),
		logger:                logger,
	}
}

func (c *CompositionRoot) CreateAdmitDeliveryCommandHandler() commands.AdmitDeliveryCommandHandler {
	return commands.NewAdmitDeliveryCommandHandler(
		c.deliveryUoWFactory(), c.officeHours, c.quota, c.dispatcher, nil)
}

func (c *CompositionRoot) CreateRegisterShipmentCommandHandler() commands.RegisterShipmentCommandHandler {
	return commands.NewRegisterShipmentCommandHandler(c.deliveryUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(c.deliveryUoWFactory(), c.officeHours, c.quota, nil)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateEditDeliveryCommandHandler() commands.EditDeliveryCommandHandler {
	return commands.NewEditDeliveryCommandHandler(
		c.deliveryUoWFactory(), c.officeHours, c.quota, c.dispatcher, nil)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	return commands.NewCancelDeliveryCommandHandler(c.deliveryUoWFactory(), nil)
}

func (c *CompositionRoot) CreateReportProblemCommandHandler() commands.ReportProblemCommandHandler {
	return commands.NewReportProblemCommandHandler(c.problemUoWFactory(), c.minProblemDescription)
}

func (c *CompositionRoot) CreateResolveProblemCommandHandler() commands.ResolveProblemCommandHandler {
	return commands.NewResolveProblemCommandHandler(c.problemUoWFactory(), c.dispatcher, nil)
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCourierDeliveriesQueryHandler() queries.ListCourierDeliveriesQueryHandler {
	return queries.NewListCourierDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProblemsQueryHandler() queries.ListProblemsQueryHandler {
	return queries.NewListProblemsQueryHandler(c.gormDB)
}

// CreateJobManager builds the background worker that drains the notification
// job queue. Only the worker binary calls this, so SMTP configuration is
// resolved here rather than at root construction.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	dispatchJob := jobs.NewNotificationDispatchJob(c.jobQueue, c.CreateMailer(), c.logger)
	return jobs.NewJobManager(dispatchJob)
}

// CreateMailer builds the SMTP mailer from configuration.
func (c *CompositionRoot) CreateMailer() ports.Mailer {
	return newMailer(c.configs)
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) problemUoWFactory() commands.ProblemUoWFactory {
	return FuncProblemUoWFactory(func() commands.ProblemUoW {
		return c.uowFactory.Create()
	})
}

// newDispatcher selects the notification delivery strategy. The default is
// the durable queue; direct sending suits installations without a worker.
func newDispatcher(configs Config, jobQueue *jobrepo.GormJobRepository, logger *slog.Logger) notifications.Dispatcher {
	if configs.NotificationStrategy == notificationStrategyDirect {
		dispatcher, err := notifications.NewDirectDispatcher(newMailer(configs), logger)
		if err != nil {
			log.Fatalf("Failed to create direct notification dispatcher: %v", err)
		}
		return dispatcher
	}

	dispatcher, err := notifications.NewQueuedDispatcher(jobQueue, logger)
	if err != nil {
		log.Fatalf("Failed to create queued notification dispatcher: %v", err)
	}
	return dispatcher
}

func newMailer(configs Config) ports.Mailer {
	mailer, err := mail.NewGomailSender(
		configs.SMTPHost,
		intConfig(configs.SMTPPort, 587),
		configs.SMTPUser,
		configs.SMTPPassword,
		configs.SMTPFrom,
	)
	if err != nil {
		log.Fatalf("Invalid SMTP configuration: %v", err)
	}
	return mailer
}

// intConfig parses an optional numeric setting, falling back when unset.
func intConfig(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid numeric configuration value %q: %v", raw, err)
	}
	return value
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncProblemUoWFactory func() commands.ProblemUoW

func (f FuncProblemUoWFactory) Create() commands.ProblemUoW {
	return f()
}
