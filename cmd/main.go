package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"allocboard/internal/config"
	"allocboard/internal/features/advisor"
	"allocboard/internal/features/audit_logs"
	"allocboard/internal/features/departments"
	"allocboard/internal/features/efforts"
	"allocboard/internal/features/employees"
	"allocboard/internal/features/projects"
	users_controllers "allocboard/internal/features/users/controllers"
	users_enums "allocboard/internal/features/users/enums"
	users_middleware "allocboard/internal/features/users/middleware"
	users_models "allocboard/internal/features/users/models"
	users_services "allocboard/internal/features/users/services"
	"allocboard/internal/storage"
	env_utils "allocboard/internal/util/env"
	"allocboard/internal/util/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	log := logger.GetLogger()
	cfg := config.GetEnv()

	db, err := storage.Connect(cfg.DatabaseDsn)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	runMigrations(log, db)

	auditLogService, auditLogController := audit_logs.BuildFeature(db, log)

	authService, managementService := users_services.BuildServices(db, cfg, auditLogService)

	if err := managementService.SeedInitialAdmin(cfg.AdminEmail); err != nil {
		log.Error("Failed to seed initial admin", "error", err)
		os.Exit(1)
	}

	secureCookies := cfg.EnvMode == env_utils.EnvModeProduction
	authController, managementController := users_controllers.BuildControllers(
		authService, managementService, log, secureCookies)

	employeeController := employees.NewEmployeeController(employees.NewEmployeeRepository(db), log)
	departmentController := departments.NewDepartmentController(departments.NewDepartmentRepository(db))
	projectController := projects.NewProjectController(
		projects.NewProjectRepository(db),
		projects.NewAssignmentRepository(db),
	)
	effortController := efforts.NewEffortController(efforts.NewEffortRepository(db))
	advisorController := advisor.BuildController(db, cfg, log)

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	// Add GZIP compression middleware
	ginApp.Use(gzip.Gzip(
		gzip.DefaultCompression,
		// Don't compress already compressed files
		gzip.WithExcludedExtensions(
			[]string{".png", ".gif", ".jpeg", ".jpg", ".ico", ".svg", ".pdf", ".mp4"},
		),
	))

	enableCors(ginApp)

	// Public login flow
	authController.RegisterRoutes(ginApp)
	registerPages(ginApp, authService, cfg)

	// Data endpoints behind the session middleware
	api := ginApp.Group("/api")
	api.Use(users_middleware.AuthMiddleware(authService))

	authController.RegisterProtectedRoutes(api)
	managementController.RegisterRoutes(api)
	auditLogController.RegisterRoutes(api)
	employeeController.RegisterRoutes(api)
	departmentController.RegisterRoutes(api)
	projectController.RegisterRoutes(api)
	effortController.RegisterRoutes(api)
	advisorController.RegisterRoutes(api)

	mountFrontend(ginApp, cfg.FrontendDir)

	startServerWithGracefulShutdown(log, ginApp)
}

func runMigrations(log *slog.Logger, db *gorm.DB) {
	log.Info("Running database migrations...")

	err := storage.Migrate(db,
		&users_models.UserRole{},
		&employees.Employee{},
		&departments.Department{},
		&projects.Project{},
		&projects.ProjectAssignment{},
		&efforts.Effort{},
		&audit_logs.AuditLog{},
	)
	if err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	log.Info("Database migrations completed successfully")
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	host := ""
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// for dev we use localhost to avoid firewall
		// requests on each run for Windows
		host = "127.0.0.1"
	}

	srv := &http.Server{
		Addr:    host + ":5000",
		Handler: app,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	// The context is used to inform the server it has 10 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	log.Info("Server gracefully stopped")
}

// registerPages gates the browser-rendered views. Unauthenticated
// visitors are redirected to the login page, never handed a JSON 403.
func registerPages(ginApp *gin.Engine, authService *users_services.AuthService, cfg config.EnvVariables) {
	servePage := func(name string) gin.HandlerFunc {
		return func(ctx *gin.Context) {
			ctx.File(filepath.Join(cfg.FrontendDir, name))
		}
	}

	ginApp.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/login.html")
	})

	ginApp.GET("/home", func(ctx *gin.Context) {
		cookie, err := ctx.Cookie(users_middleware.SessionCookieName)
		if err == nil {
			if _, sessionErr := authService.SessionFromToken(cookie); sessionErr == nil {
				ctx.Redirect(http.StatusFound, "/index.html")
				return
			}
		}

		ctx.Redirect(http.StatusFound, "/login.html")
	})

	anyUser := users_middleware.RequirePageRole(authService, users_middleware.AnyAuthenticated...)
	adminOnly := users_middleware.RequirePageRole(authService, users_enums.RoleAdmin)

	for _, page := range []string{
		"index.html",
		"workload-summary.html",
		"add-department.html",
		"add-employee.html",
		"add-project.html",
		"project-mapping.html",
	} {
		ginApp.GET("/"+page, anyUser, servePage(page))
	}

	ginApp.GET("/admin.html", adminOnly, servePage("admin.html"))
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// Setup CORS
		ginApp.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Authorization",
				"Accept",
				"Accept-Language",
				"Accept-Encoding",
				"Access-Control-Request-Method",
				"Access-Control-Request-Headers",
				"Access-Control-Allow-Methods",
				"Access-Control-Allow-Headers",
				"Access-Control-Allow-Origin",
			},
			AllowCredentials: true,
		}))
	}
}

func mountFrontend(ginApp *gin.Engine, staticDir string) {
	ginApp.NoRoute(func(c *gin.Context) {
		path := filepath.Join(staticDir, c.Request.URL.Path)

		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}

		c.File(filepath.Join(staticDir, "login.html"))
	})
}
