// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/finanzas-app/backend/config"
	"github.com/finanzas-app/backend/internal/application/adapter"
	"github.com/finanzas-app/backend/internal/application/usecase/account"
	"github.com/finanzas-app/backend/internal/application/usecase/alert"
	"github.com/finanzas-app/backend/internal/application/usecase/dashboard"
	"github.com/finanzas-app/backend/internal/application/usecase/movement"
	"github.com/finanzas-app/backend/internal/application/usecase/obligation"
	"github.com/finanzas-app/backend/internal/application/usecase/settlement"
	"github.com/finanzas-app/backend/internal/infra/server/router"
	"github.com/finanzas-app/backend/internal/integration/email"
	"github.com/finanzas-app/backend/internal/integration/entrypoint/controller"
	"github.com/finanzas-app/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The email sender is injectable so tests can capture digests instead of
// calling Resend.
func NewInjector(cfg *config.Config, db *gorm.DB, emailSender adapter.EmailSender, dbHealthChecker func() bool) *Injector {
	// Create repositories
	accountRepo := persistence.NewAccountRepository(db)
	obligationRepo := persistence.NewObligationRepository(db)
	settlementPoster := persistence.NewSettlementRepository(db)
	movementRepo := persistence.NewMovementRepository(db)

	if emailSender == nil {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	schedulerConfig := alert.SchedulerConfig{
		HorizonDays:           cfg.Alerts.HorizonDays,
		FixedBackMonths:       cfg.Alerts.FixedBackMonths,
		InstallmentBackMonths: cfg.Alerts.InstallmentBackMonths,
	}

	// Create account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	getAccountMovementsUseCase := account.NewGetAccountMovementsUseCase(accountRepo)

	// Create obligation use cases
	createObligationUseCase := obligation.NewCreateObligationUseCase(obligationRepo, accountRepo)
	listObligationsUseCase := obligation.NewListObligationsUseCase(obligationRepo)
	deleteObligationUseCase := obligation.NewDeleteObligationUseCase(obligationRepo)
	getHistoryUseCase := obligation.NewGetHistoryUseCase(obligationRepo)
	isSettledUseCase := obligation.NewIsSettledUseCase(obligationRepo)

	// Create settlement use case
	settleObligationUseCase := settlement.NewSettleObligationUseCase(obligationRepo, accountRepo, settlementPoster)

	// Create alert use cases
	computeAlertsUseCase := alert.NewComputeAlertsUseCase(obligationRepo, schedulerConfig)
	sendDigestUseCase := alert.NewSendDigestUseCase(obligationRepo, emailSender, schedulerConfig, cfg.Email.DigestTo)

	// Create movement use cases
	registerMovementUseCase := movement.NewRegisterMovementUseCase(movementRepo, accountRepo)
	listMovementsUseCase := movement.NewListMovementsUseCase(movementRepo)
	deleteMovementUseCase := movement.NewDeleteMovementUseCase(movementRepo, accountRepo)
	clearMovementsUseCase := movement.NewClearMovementsUseCase(movementRepo)

	// Create dashboard use case
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(accountRepo, obligationRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)

	accountController := controller.NewAccountController(
		createAccountUseCase,
		listAccountsUseCase,
		getAccountMovementsUseCase,
	)

	obligationController := controller.NewObligationController(
		createObligationUseCase,
		listObligationsUseCase,
		deleteObligationUseCase,
		getHistoryUseCase,
		isSettledUseCase,
		settleObligationUseCase,
	)

	alertController := controller.NewAlertController(
		computeAlertsUseCase,
		sendDigestUseCase,
	)

	movementController := controller.NewMovementController(
		registerMovementUseCase,
		listMovementsUseCase,
		deleteMovementUseCase,
		clearMovementsUseCase,
	)

	dashboardController := controller.NewDashboardController(getSummaryUseCase)

	// Create router
	r := router.NewRouter(
		healthController,
		accountController,
		obligationController,
		alertController,
		movementController,
		dashboardController,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
