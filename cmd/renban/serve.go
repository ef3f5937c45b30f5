package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpadapter "svw.info/renban/internal/adapters/http"
	"svw.info/renban/internal/generator"
	"svw.info/renban/internal/infrastructure/storage"
	"svw.info/renban/internal/solver"
	"svw.info/renban/internal/usecase"
	"svw.info/renban/internal/validator"
)

func newServeCommand() *cobra.Command {
	var (
		addr    string
		persist string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			_ = os.MkdirAll(persist, 0o755)

			s := solver.NewEngine()
			uc := usecase.NewService(s, generator.NewUniqueGenerator(s), validator.New(), storage.NewFS(persist))

			gin.SetMode(gin.ReleaseMode)
			r := gin.New()
			r.Use(requestLogger(logger), gin.Recovery())
			httpadapter.New(uc).Register(r)

			srv := &http.Server{
				Addr:              addr,
				Handler:           r,
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("listening", "addr", addr, "persist", persist)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&persist, "persist-path", "./data", "save directory")
	return cmd
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}
