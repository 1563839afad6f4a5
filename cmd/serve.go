package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"task-manager.com/task-manager/internal/auth"
	config "task-manager.com/task-manager/internal/configs"
	httpapi "task-manager.com/task-manager/internal/http"
	repository "task-manager.com/task-manager/internal/repositories"
	"task-manager.com/task-manager/internal/revocation"
	"task-manager.com/task-manager/internal/services"
	"task-manager.com/task-manager/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task manager HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		tokenTTL := time.Duration(cfg.TokenTTLMinutes) * time.Minute
		registry := revocation.NewRedisRegistry(redisClient, cfg.RedisRevokedKeyPrefix, tokenTTL)
		authority := auth.NewTokenAuthority(cfg.JWTSecret, tokenTTL, registry)
		hasher := auth.NewPasswordHasher()

		uploads, err := storage.NewUploadStore(cfg.UploadDir, cfg.AllowedExtensions, cfg.MaxFileUploads)
		if err != nil {
			return err
		}

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)

		authService := services.NewAuthService(userRepo, hasher, authority)
		userService := services.NewUserService(userRepo, hasher)
		taskService := services.NewTaskService(taskRepo, uploads, cfg.DefaultPageSize, cfg.MaxPageSize)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		httpapi.Register(
			e,
			httpapi.NewAuthHandler(authService),
			httpapi.NewUserHandler(userService),
			httpapi.NewTaskHandler(taskService),
			authority,
			cfg.RateLimit,
		)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		echoCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(echoCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
