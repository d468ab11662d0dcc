package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freezer/app"
	"freezer/app/item"
	"freezer/infra/mongodb"
	"freezer/infra/rabbitmq"
	"freezer/internal/middleware"
	"freezer/pkg/config"
	"freezer/pkg/events"
	"freezer/pkg/httperror"
	"freezer/pkg/media"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Request any
type Response any

type HandlerInterface[R Request, Res Response] interface {
	Handle(ctx context.Context, req *R) (*Res, error)
}

func handle[R Request, Res Response](handler HandlerInterface[R, Res]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req R

		if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
			return writeError(c, httperror.BadRequest(
				"request.invalid_body",
				"Invalid body",
				fiber.Map{"error": err.Error()},
			))
		}

		if err := c.ParamsParser(&req); err != nil {
			return writeError(c, httperror.BadRequest(
				"request.invalid_path_params",
				"Invalid path params",
				fiber.Map{"error": err.Error()},
			))
		}

		if err := c.QueryParser(&req); err != nil {
			return writeError(c, httperror.BadRequest(
				"request.invalid_query_params",
				"Invalid query params",
				fiber.Map{"error": err.Error()},
			))
		}

		ctx := c.UserContext()

		res, err := handler.Handle(ctx, &req)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(res)
	}
}

func main() {
	logger, _ := zap.NewProduction()
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	// Quantities travel as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	appConfig := config.Read()
	zap.L().Info("app starting...")

	fiberApp := fiber.New(fiber.Config{
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		Concurrency:  256 * 1024,
	})

	repository := mongodb.NewMongoRepository(
		appConfig.MongoURI,
		appConfig.MongoDatabase,
	)
	defer repository.Close()

	mediaService, err := media.NewCloudinaryService(
		appConfig.CloudinaryCloudName,
		appConfig.CloudinaryAPIKey,
		appConfig.CloudinaryAPISecret,
	)
	if err != nil {
		zap.L().Fatal("Failed to configure media service", zap.Error(err))
	}
	resolver := media.NewResolver(mediaService)

	var eventPublisher events.Publisher
	if appConfig.RabbitMQURL != "" {
		publisher, err := rabbitmq.NewRabbitMQPublisher(appConfig.RabbitMQURL, appConfig.ServiceName)
		if err != nil {
			zap.L().Warn("Event publishing disabled", zap.Error(err))
		} else {
			eventPublisher = publisher
			defer publisher.Close()
		}
	}

	getItemsHandler := item.NewGetItemsHandler(repository)
	createItemHandler := item.NewCreateItemHandler(repository, resolver, eventPublisher)
	updateItemHandler := item.NewUpdateItemHandler(repository, resolver, eventPublisher)
	deleteItemHandler := item.NewDeleteItemHandler(repository, eventPublisher)
	getLibraryHandler := app.NewGetLibraryHandler(mediaService)

	api := fiberApp.Group("/api", middleware.NewSecurityHeadersMiddleware())
	api.Get("/items", handle[item.GetItemsRequest, item.GetItemsResponse](getItemsHandler))
	api.Post("/items", handle[item.CreateItemRequest, item.CreateItemResponse](createItemHandler))
	api.Put("/items/:id", handle[item.UpdateItemRequest, item.UpdateItemResponse](updateItemHandler))
	api.Delete("/items/:id", handle[item.DeleteItemRequest, item.DeleteItemResponse](deleteItemHandler))
	api.Get("/media/library", handle[app.GetLibraryRequest, app.GetLibraryResponse](getLibraryHandler))

	// Start server in a goroutine
	go func() {
		if err := fiberApp.Listen(fmt.Sprintf("0.0.0.0:%s", appConfig.Port)); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", appConfig.Port))

	gracefulShutdown(fiberApp)
}

func gracefulShutdown(app *fiber.App) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	zap.L().Info("Shutting down server...")

	// Shutdown with 5 second timeout
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zap.L().Error("Error during server shutdown", zap.Error(err))
	}

	zap.L().Info("Server gracefully stopped")
}

func writeError(c *fiber.Ctx, err error) error {
	var httpErr *httperror.Error
	if errors.As(err, &httpErr) {
		payload := fiber.Map{
			"code":    httpErr.Code,
			"message": httpErr.Message,
		}

		if httpErr.Details != nil {
			payload["details"] = httpErr.Details
		}

		if httpErr.Status >= fiber.StatusInternalServerError {
			zap.L().Error("Handler returned server error", zap.String("code", httpErr.Code), zap.Error(httpErr))
		} else {
			zap.L().Warn("Handler returned client error", zap.String("code", httpErr.Code), zap.Error(httpErr))
		}

		return c.Status(httpErr.Status).JSON(payload)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		zap.L().Warn("Fiber validation error", zap.String("message", fiberErr.Message), zap.Error(err))
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"code":    "request.invalid",
			"message": fiberErr.Message,
		})
	}

	zap.L().Error("Unhandled error", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":    "internal_server_error",
		"message": "Internal server error.",
	})
}
