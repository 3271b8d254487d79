package serverrun

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	cfgpkg "github.com/hstreamdb/hdelivery/internal/config"
	"github.com/hstreamdb/hdelivery/internal/runtime"
	grpcserver "github.com/hstreamdb/hdelivery/internal/server/grpc"
	pebblestore "github.com/hstreamdb/hdelivery/internal/storage/pebble"
	logpkg "github.com/hstreamdb/hdelivery/pkg/log"
)

// Options configures a server run.
type Options struct {
	DataDir       string
	GRPCAddr      string
	Fsync         pebblestore.FsyncMode
	FsyncInterval time.Duration
	Config        cfgpkg.Config
}

// Run starts the gRPC server and blocks until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.DataDir == "" {
		opts.DataDir = cfgpkg.DefaultDataDir()
	}
	if opts.GRPCAddr == "" {
		opts.GRPCAddr = opts.Config.GRPCAddr
	}

	logger, err := logpkg.ApplyConfig(&logpkg.Config{
		Level:  opts.Config.LogLevel,
		Format: opts.Config.LogFormat,
	})
	if err != nil {
		logger = logpkg.NewLogger(logpkg.WithFormatter(&logpkg.TextFormatter{}))
	}
	// Redirect stdlib logs (e.g., Pebble) to our logger
	logpkg.RedirectStdLog(logger)

	storeDir := filepath.Join(opts.DataDir, "store")
	rt, err := runtime.Open(runtime.Options{
		DataDir:       storeDir,
		Fsync:         opts.Fsync,
		FsyncInterval: opts.FsyncInterval,
		Config:        opts.Config,
		Logger:        logger,
	})
	if err != nil {
		return err
	}
	defer rt.Close()

	logger.Info("starting hdelivery server",
		logpkg.Str("grpc", opts.GRPCAddr),
		logpkg.Str("data_dir", opts.DataDir),
		logpkg.Str("level", opts.Config.LogLevel),
		logpkg.Str("format", opts.Config.LogFormat),
		logpkg.Int("dispatch_batch", opts.Config.DispatchBatchRecords),
		logpkg.Int("dispatch_tick_ms", opts.Config.DispatchTickMs),
	)

	gsrv := grpcserver.New(rt, logger)
	err = gsrv.ListenAndServe(sctx, opts.GRPCAddr)
	gsrv.Close()
	return err
}
