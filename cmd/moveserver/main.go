package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"movegraph/internal/adapters"
	"movegraph/internal/bootstrap"
	"movegraph/internal/delivery"
	"movegraph/internal/repository"
	movesetuc "movegraph/internal/usecase/moveset"
)

const shutdownTimeout = 5 * time.Second

var envFile string

var rootCmd = &cobra.Command{
	Use:           "moveserver",
	Short:         "Serve the moveset graph page and document",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Copy a moveset file into the configured redis key",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "env file to load before reading the environment")
	rootCmd.AddCommand(importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "moveserver:", err)
		os.Exit(1)
	}
}

func NewLogger(level string) *zap.SugaredLogger {
	build := zap.NewProduction
	if level == "debug" {
		build = zap.NewDevelopment
	}
	logger, err := build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := bootstrap.Setup(envFile)
	if err != nil {
		return fmt.Errorf("setup configuration: %w", err)
	}
	logger := NewLogger(cfg.LogLevel)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	store, closeStore, err := initMovesetStore(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           delivery.NewRouter(*cfg, logger, store),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	go handleShutdown(cancel, logger)

	logger.Infow("server is running", "addr", srv.Addr, "store", cfg.MovesetStore, "location", store.Location())
	if err := serve(ctx, srv, ln); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// serve runs srv on ln until ctx is cancelled and returns only after
// Shutdown has drained in-flight requests, so callers may release whatever
// the handlers depend on.
func serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	shutdownDone := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
		defer stop()
		shutdownDone <- srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	if err := <-shutdownDone; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// runImport copies a moveset file, MOVESET_PATH by default, into redis.
func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap.Setup(envFile)
	if err != nil {
		return fmt.Errorf("setup configuration: %w", err)
	}
	logger := NewLogger(cfg.LogLevel)
	defer logger.Sync()

	path := cfg.MovesetPath
	if len(args) == 1 {
		path = args[0]
	}

	redisAdapter := adapters.NewAdapterRedis(cfg, logger)
	if err := redisAdapter.Init(cmd.Context()); err != nil {
		return err
	}
	defer redisAdapter.Close(cmd.Context())

	dst := repository.NewRedisMovesetStore(redisAdapter.GetClient(), cfg.MovesetRedisKey)
	uc := movesetuc.NewMovesetUseCase(repository.NewFileMovesetStore(path))
	if err := uc.CopyTo(cmd.Context(), dst); err != nil {
		return err
	}

	logger.Infow("moveset imported", "from", path, "to", dst.Location())
	return nil
}

func initMovesetStore(ctx context.Context, log *zap.SugaredLogger, cfg *bootstrap.Config) (movesetuc.Store, func(), error) {
	switch cfg.MovesetStore {
	case bootstrap.StoreRedis:
		redisAdapter := adapters.NewAdapterRedis(cfg, log)
		if err := redisAdapter.Init(ctx); err != nil {
			return nil, nil, err
		}
		closeFn := func() { _ = redisAdapter.Close(context.Background()) }
		return repository.NewRedisMovesetStore(redisAdapter.GetClient(), cfg.MovesetRedisKey), closeFn, nil
	default:
		return repository.NewFileMovesetStore(cfg.MovesetPath), func() {}, nil
	}
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
