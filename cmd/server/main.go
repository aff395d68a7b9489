// main.go
//
// NeuroRelief migraine tracking API service
// Copyright (c) 2026 TechNeurology
//
// This file is part of neurorelief.
// neurorelief is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// neurorelief is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with neurorelief.
// If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/techneurology/neurorelief/internal/config"
	"github.com/techneurology/neurorelief/internal/database"
	"github.com/techneurology/neurorelief/internal/handlers"
	"github.com/techneurology/neurorelief/internal/middleware"
	"github.com/techneurology/neurorelief/internal/services"
	"github.com/techneurology/neurorelief/internal/storage"
	"github.com/techneurology/neurorelief/internal/types"
	"github.com/techneurology/neurorelief/internal/utils"

	_ "github.com/techneurology/neurorelief/docs/api" // Swagger docs
)

// @title NeuroRelief API
// @version 1.0.0
// @description Migraine tracking and reporting service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/techneurology/neurorelief

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	store := storage.New(db)
	analytics := services.NewAnalytics(store)
	reports := services.NewReports(store)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("neurorelief")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Service health
	app.Get("/healthz", func(c *fiber.Ctx) error {
		result := services.HealthCheck(cfg, db)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// API routes under /api, all session-authenticated
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())
	api.Use(middleware.AuthUser(cfg))

	authHandler := &handlers.AuthHandler{Store: store}
	episodeHandler := &handlers.EpisodeHandler{Store: store}
	medicationHandler := &handlers.MedicationHandler{Store: store, Analytics: analytics}
	medicationLogHandler := &handlers.MedicationLogHandler{Store: store}
	triggerHandler := &handlers.TriggerHandler{Store: store}
	analyticsHandler := &handlers.AnalyticsHandler{Analytics: analytics}
	reportHandler := &handlers.ReportHandler{Store: store, Reports: reports}
	medicalLogHandler := &handlers.MedicalLogHandler{Store: store}
	templateHandler := &handlers.AssessmentTemplateHandler{Store: store}

	api.Get("/auth/user", authHandler.GetCurrentUser)

	api.Post("/episodes", episodeHandler.CreateEpisode)
	api.Get("/episodes", episodeHandler.GetEpisodes)
	api.Patch("/episodes/:id", episodeHandler.UpdateEpisode)

	api.Post("/medications", medicationHandler.CreateMedication)
	api.Get("/medications", medicationHandler.GetMedications)
	api.Patch("/medications/:id", medicationHandler.UpdateMedication)
	api.Get("/medications/:id/effectiveness", medicationHandler.GetMedicationEffectiveness)

	api.Post("/medication-logs", medicationLogHandler.CreateMedicationLog)
	api.Get("/medication-logs", medicationLogHandler.GetMedicationLogs)

	api.Post("/triggers", triggerHandler.CreateTrigger)
	api.Get("/triggers", triggerHandler.GetTriggers)
	api.Patch("/triggers/:id/correlation", triggerHandler.UpdateTriggerCorrelation)

	api.Get("/analytics/weekly", analyticsHandler.GetWeeklyStats)

	api.Post("/reports/generate", reportHandler.GenerateReport)
	api.Get("/reports", reportHandler.GetReports)

	api.Post("/medical-logs", medicalLogHandler.CreateMedicalLog)
	api.Get("/medical-logs", medicalLogHandler.GetMedicalLogs)
	api.Get("/medical-logs/episode/:episodeId", medicalLogHandler.GetMedicalLogsByEpisode)
	api.Get("/medical-logs/type/:logType", medicalLogHandler.GetMedicalLogsByType)
	api.Patch("/medical-logs/:id", medicalLogHandler.UpdateMedicalLog)
	api.Delete("/medical-logs/:id", medicalLogHandler.DeleteMedicalLog)

	api.Post("/assessment-templates", templateHandler.CreateAssessmentTemplate)
	api.Get("/assessment-templates", templateHandler.GetAssessmentTemplates)
	api.Patch("/assessment-templates/:id", templateHandler.UpdateAssessmentTemplate)
	api.Delete("/assessment-templates/:id", templateHandler.DeleteAssessmentTemplate)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorMessage{
			Message: "Resource not found",
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler renders errors that escape the handlers, including the
// auth middleware's typed errors.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var customErr *types.CustomError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &customErr):
		code = customErr.Code
		message = customErr.Message
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(utils.ErrorMessage{Message: message})
}
