package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"asset-uploader/core/loader"
	"asset-uploader/core/logger"
	"asset-uploader/core/middleware/auth"
	"asset-uploader/core/middleware/rayid"
	"asset-uploader/feature/integrity"
	"asset-uploader/feature/objects"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "asset-uploader/docs/swagger"
)

// @title Asset Uploader API
// @version 1.0
// @description API for uploading files to S3-compatible object storage.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the upload server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()
		logg := rt.logger
		zap.ReplaceGlobals(logg)

		db := rt.connectLedger()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             rt.cfg.Server.BodyLimit(),
		})

		mgr := loader.NewManager(logg)
		mgr.Register(objects.NewFeature(rt.store, rt.cfg.Storage, logg))
		mgr.Register(integrity.NewFeature(rt.store, rt.cfg.Storage, logg, db))

		// RayID must run first so every log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		if rt.cfg.Server.AuthEnabled() {
			app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))
		} else {
			logg.Warn("API key not configured, authentication disabled")
		}

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
				errCh <- fmt.Errorf("server failed to start: %w", err)
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case <-c:
		case <-cmd.Context().Done():
		case err := <-errCh:
			return err
		}
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
