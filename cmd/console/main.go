package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-health-console/internal/config"
	"go-health-console/internal/handler"
	"go-health-console/internal/middleware"
	"go-health-console/internal/model"
	"go-health-console/internal/permission"
	"go-health-console/internal/service"
	"go-health-console/internal/session"
	"go-health-console/internal/upstream"
	"go-health-console/pkg/logs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.FromEnv()
	if cfg.UpstreamBaseURL == "" {
		log.Fatal("UPSTREAM_BASE_URL is required")
	}

	// 2. Logger
	slogger := logs.New(cfg.LogLevel, cfg.LogFile)

	// 3. Session storage (Redis when configured, in-process otherwise)
	storage := session.NewStorage(cfg.RedisURL)
	sessions := session.New(storage, cfg.SessionTTL, slogger)

	// 4. Upstream records API client
	api := upstream.New(cfg.UpstreamBaseURL, slogger)

	// 5. Dependency Injection (Wiring Layers)
	authService := service.NewAuthService(api, sessions, cfg.SessionTTL, slogger)
	recordsService := service.NewRecordsService(api, slogger)
	roleService := service.NewRoleService(api, slogger)
	dashService := service.NewDashboardService(api, slogger)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL)
	recordsHandler := handler.NewRecordsHandler(recordsService)
	roleHandler := handler.NewRoleHandler(roleService)
	dashHandler := handler.NewDashboardHandler(dashService)
	logHandler := handler.NewActivityLogHandler(api)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Health Facility Console v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: cfg.CORSOrigins != "*",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 7. Routes
	api1 := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api1.Post("/auth/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	// Everything below needs a live session; per-activity gates follow.
	protected := api1.Group("", middleware.RequireSession(sessions))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/navigation", authHandler.Navigation)
	protected.Get("/dashboard/charts", dashHandler.GetCharts)

	// Dropdown reference data is ungated beyond the session; every form
	// page needs it no matter which activities the role grants.
	protected.Get("/dropdowns", recordsHandler.GetDropdowns)

	canView := func(activity string) fiber.Handler {
		return middleware.RequireActivity(activity, permission.ActionView)
	}

	facilities := protected.Group("/facilities")
	facilities.Get("", canView(model.ActivityHealthFacility), recordsHandler.GetFacilities)
	facilities.Get("/export/csv", canView(model.ActivityHealthFacility), recordsHandler.ExportFacilitiesCSV)
	facilities.Get("/export/xlsx", canView(model.ActivityHealthFacility), recordsHandler.ExportFacilitiesXLSX)
	facilities.Post("", middleware.RequireActivity(model.ActivityHealthFacility, permission.ActionCreate), recordsHandler.CreateFacility)
	facilities.Put("/:id", middleware.RequireActivity(model.ActivityHealthFacility, permission.ActionUpdate), recordsHandler.UpdateFacility)
	facilities.Delete("/:id", middleware.RequireActivity(model.ActivityHealthFacility, permission.ActionDelete), recordsHandler.DeleteFacility)

	workers := protected.Group("/workers")
	workers.Get("", canView(model.ActivityHealthWorker), recordsHandler.GetWorkers)
	workers.Get("/export/csv", canView(model.ActivityHealthWorker), recordsHandler.ExportWorkersCSV)
	workers.Get("/export/xlsx", canView(model.ActivityHealthWorker), recordsHandler.ExportWorkersXLSX)
	workers.Post("", middleware.RequireActivity(model.ActivityHealthWorker, permission.ActionCreate), recordsHandler.CreateWorker)
	workers.Put("/:id", middleware.RequireActivity(model.ActivityHealthWorker, permission.ActionUpdate), recordsHandler.UpdateWorker)
	workers.Delete("/:id", middleware.RequireActivity(model.ActivityHealthWorker, permission.ActionDelete), recordsHandler.DeleteWorker)

	patients := protected.Group("/patients")
	patients.Get("", canView(model.ActivityPatient), recordsHandler.GetPatients)
	patients.Get("/export/csv", canView(model.ActivityPatient), recordsHandler.ExportPatientsCSV)
	patients.Get("/export/xlsx", canView(model.ActivityPatient), recordsHandler.ExportPatientsXLSX)
	patients.Post("", middleware.RequireActivity(model.ActivityPatient, permission.ActionCreate), recordsHandler.CreatePatient)
	patients.Put("/:id", middleware.RequireActivity(model.ActivityPatient, permission.ActionUpdate), recordsHandler.UpdatePatient)
	patients.Delete("/:id", middleware.RequireActivity(model.ActivityPatient, permission.ActionDelete), recordsHandler.DeletePatient)

	users := protected.Group("/users")
	users.Get("", canView(model.ActivityUserManagement), recordsHandler.GetUsers)
	users.Get("/export/csv", canView(model.ActivityUserManagement), recordsHandler.ExportUsersCSV)
	users.Get("/export/xlsx", canView(model.ActivityUserManagement), recordsHandler.ExportUsersXLSX)
	users.Post("", middleware.RequireActivity(model.ActivityUserManagement, permission.ActionCreate), recordsHandler.CreateUser)
	users.Put("/:id", middleware.RequireActivity(model.ActivityUserManagement, permission.ActionUpdate), recordsHandler.UpdateUser)
	users.Delete("/:id", middleware.RequireActivity(model.ActivityUserManagement, permission.ActionDelete), recordsHandler.DeleteUser)

	roles := protected.Group("/roles")
	roles.Get("", canView(model.ActivityRoleManagement), roleHandler.GetRoles)
	roles.Get("/export/xlsx", canView(model.ActivityRoleManagement), roleHandler.ExportRolesXLSX)
	roles.Get("/:id/mappings", canView(model.ActivityRoleManagement), roleHandler.GetRoleMappings)
	// Saving serves both create and edit, so either capability admits.
	roles.Post("", middleware.RequireAnyActivity(model.ActivityRoleManagement, permission.ActionCreate, permission.ActionUpdate), roleHandler.SaveRole)
	roles.Delete("/:id", middleware.RequireActivity(model.ActivityRoleManagement, permission.ActionDelete), roleHandler.DeleteRole)

	activityLogs := protected.Group("/activity-logs")
	activityLogs.Get("", canView(model.ActivityActivityLog), logHandler.GetActivityLogs)
	activityLogs.Get("/export/csv", canView(model.ActivityActivityLog), logHandler.ExportActivityLogsCSV)

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	_ = storage.Close()

	log.Println("Server exited")
}
