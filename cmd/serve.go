package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/princinho/menufront/controllers"
	"github.com/princinho/menufront/session"
	"github.com/princinho/menufront/utils"
	"github.com/princinho/menufront/views"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web frontend",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.IsDevelopment() {
			gin.SetMode(gin.ReleaseMode)
		}

		tmpl, err := views.Templates()
		if err != nil {
			return fmt.Errorf("parse templates: %w", err)
		}

		app := &controllers.App{
			BackendURL: cfg.Backend.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.Backend.RequestTimeout},
			Logger:     appLogger,
			Images:     utils.NewImageValidator(),
			Cookie: session.CookieOptions{
				Domain: cfg.Session.CookieDomain,
				Secure: cfg.Session.CookieSecure,
				MaxAge: cfg.Session.CookieMaxAge,
			},
		}
		origins := utils.SplitList(cfg.Server.AllowedOrigins)
		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           controllers.Router(app, tmpl, origins),
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			appLogger.Info("starting web frontend",
				zap.String("addr", cfg.Server.Addr),
				zap.String("backend", cfg.Backend.BaseURL))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				appLogger.Fatal("failed to serve", zap.Error(err))
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		appLogger.Info("shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		appLogger.Info("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}
