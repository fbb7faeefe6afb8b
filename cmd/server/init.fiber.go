package main

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"github.com/ammarShahab/trust-Life-life-insurance-management-server/config"
	basehandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/handler"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/logger"
)

// newFiberApp builds the Fiber app with the shared middleware stack and the
// envelope-producing error handler.
func newFiberApp(cfg *config.Configuration) *fiber.App {
	requestTimeout := time.Duration(cfg.RequestTimeout) * time.Second

	app := fiber.New(fiber.Config{
		AppName:      "trustlife-api",
		ReadTimeout:  requestTimeout,
		WriteTimeout: requestTimeout,
		IdleTimeout:  2 * requestTimeout,
		ErrorHandler: func(c fiber.Ctx, err error) error {
			if fiberErr, ok := err.(*fiber.Error); ok {
				return c.Status(fiberErr.Code).JSON(basehandler.ResponseEnvelope{
					Code:    common.ErrCodeInternalServer.Code,
					Message: fiberErr.Message,
					Status:  fiberErr.Code,
				})
			}
			return basehandler.ErrorResponse(c, err)
		},
	})

	app.Use(requestid.New())
	app.Use(recover.New())
	// Store calls inherit this deadline through c.Context().
	app.Use(func(c fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
		defer cancel()
		c.SetContext(ctx)
		return c.Next()
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORS_Origins, ","),
		AllowCredentials: cfg.CORS_AllowCredentials,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	}))
	if cfg.RateLimit_Enabled {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit_Max,
			Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
		}))
	}

	// Access log with the request id attached.
	app.Use(func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.GetAccessLogger().WithFields(map[string]interface{}{
			"requestId": requestid.FromContext(c),
			"method":    c.Method(),
			"path":      c.Path(),
			"status":    c.Response().StatusCode(),
			"duration":  time.Since(start).String(),
		}).Info("request")
		return err
	})

	return app
}
