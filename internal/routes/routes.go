package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-atividades/internal/audit"
	"github.com/BruksfildServices01/agenda-atividades/internal/calendar"
	"github.com/BruksfildServices01/agenda-atividades/internal/config"
	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/handlers"
	infraRepo "github.com/BruksfildServices01/agenda-atividades/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-atividades/internal/middleware"
	ucActivity "github.com/BruksfildServices01/agenda-atividades/internal/usecase/activity"
	ucCalendar "github.com/BruksfildServices01/agenda-atividades/internal/usecase/calendar"
)

// Deps reúne o que o servidor constrói uma única vez no boot.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger

	// Store atende todas as operações de atividade; pode ser o
	// repositório direto ou o cache redis na frente dele.
	Store domain.Store
	Audit *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(deps.DB)
	if deps.Store == nil {
		deps.Store = infraRepo.NewActivityGormRepository(deps.DB)
	}
	auditLogger := audit.New(deps.DB)

	gridOpts := calendar.GridOptions{
		Location: cfg.Location(),
		Locale:   cfg.CalendarLocale(),
	}

	// ======================================================
	// 🧠 USE CASES: ACTIVITIES
	// ======================================================
	createActivityUC := ucActivity.NewCreateActivity(deps.Store, deps.Audit)
	updateActivityUC := ucActivity.NewUpdateActivity(deps.Store, deps.Audit)
	deleteActivityUC := ucActivity.NewDeleteActivity(deps.Store, deps.Audit)
	getActivityUC := ucActivity.NewGetActivity(deps.Store)
	listVisibleUC := ucActivity.NewListVisible(deps.Store)

	// ======================================================
	// 🧠 USE CASES: CALENDAR
	// ======================================================
	buildMonthGridUC := ucCalendar.NewBuildMonthGrid(deps.Store, gridOpts, logger)
	selectDayUC := ucCalendar.NewSelectDay(deps.Store, gridOpts.Location, logger)
	exportMonthUC := ucCalendar.NewExportMonth(deps.Store, gridOpts, logger)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, cfg, deps.Audit)
	meHandler := handlers.NewMeHandler(userRepo)

	activityHandler := handlers.NewActivityHandler(
		createActivityUC,
		updateActivityUC,
		deleteActivityUC,
		getActivityUC,
		listVisibleUC,
	)

	calendarHandler := handlers.NewCalendarHandler(
		cfg,
		buildMonthGridUC,
		selectDayUC,
		exportMonthUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, gridOpts.Location)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/calendar/meta", calendarHandler.Meta)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// ACTIVITIES
			// ------------------------------
			secured.GET("/me/activities", activityHandler.List)
			secured.POST("/me/activities", activityHandler.Create)
			secured.GET("/me/activities/:id", activityHandler.Get)
			secured.PATCH("/me/activities/:id", activityHandler.Update)
			secured.DELETE("/me/activities/:id", activityHandler.Delete)

			// ------------------------------
			// CALENDAR
			// ------------------------------
			secured.GET("/me/calendar", calendarHandler.Month)
			secured.GET("/me/calendar/days/:date", calendarHandler.Day)
			secured.GET("/me/calendar/export.ics", calendarHandler.Export)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
