package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appattendance "github.com/jhoicas/Empleados-api/internal/application/attendance"
	"github.com/jhoicas/Empleados-api/internal/application/auth"
	apphr "github.com/jhoicas/Empleados-api/internal/application/hr"
	appleave "github.com/jhoicas/Empleados-api/internal/application/leave"
	"github.com/jhoicas/Empleados-api/internal/application/ports"
	"github.com/jhoicas/Empleados-api/internal/application/report"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/mail"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Empleados-api/internal/interfaces/http"
	"github.com/jhoicas/Empleados-api/pkg/config"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	leaveRepo := postgres.NewLeaveRepository(pool)
	announcementRepo := postgres.NewAnnouncementRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)

	// Correo: SES en producción, logger en desarrollo.
	var mailer ports.Mailer
	if cfg.Mail.Enabled {
		mailer, err = mail.NewSESMailer(ctx, cfg.Mail.From, cfg.Mail.Region)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente SES")
		}
	} else {
		mailer = mail.NewLogMailer(log)
	}

	authUC := auth.NewAuthUseCase(userRepo, employeeRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, userRepo)
	attendanceUC := appattendance.NewAttendanceUseCase(attendanceRepo, employeeRepo)
	leaveUC := appleave.NewLeaveUseCase(leaveRepo, employeeRepo, mailer)
	hrUC := apphr.NewHRUseCase(announcementRepo, reviewRepo, employeeRepo, userRepo)
	reportUC := report.NewReportUseCase(attendanceRepo, leaveRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Empleados API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		EmployeeUC:   employeeUC,
		AttendanceUC: attendanceUC,
		LeaveUC:      leaveUC,
		HRUC:         hrUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
