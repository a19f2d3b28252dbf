package cmd

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/anicoll/govee-integration/internal/pkg/config"
	"github.com/anicoll/govee-integration/internal/pkg/contxt"
	"github.com/anicoll/govee-integration/internal/pkg/dispatcher"
	"github.com/anicoll/govee-integration/internal/pkg/govee"
	"github.com/anicoll/govee-integration/internal/pkg/model"
)

// GoveeCommand is the main entry point for the govee controller CLI. It
// validates configuration and dispatches a single event to the device.
func GoveeCommand(ctx *cli.Context) error {
	cfg := &config.Config{
		GoveeCfg: &config.GoveeConfig{
			APIKey:    ctx.String("govee-api-key"),
			APIURL:    ctx.String("govee-api-url"),
			SKU:       ctx.String("device-sku"),
			DeviceID:  ctx.String("device-id"),
			BaseColor: ctx.String("base-color"),
			Timeout:   ctx.Duration("timeout"),
		},
		LogLevel: ctx.String("log-level"),
	}

	req := model.EventRequest{
		Event:           ctx.Args().Get(0),
		Hex:             ctx.Args().Get(1),
		PreventOverride: ctx.Bool("prevent-override"),
	}

	return run(cfg, req, ctx.Duration("flash-duration"), ctx.Duration("flash-interval"))
}

func run(cfg *config.Config, req model.EventRequest, flashDuration, flashInterval time.Duration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync() // flushes buffer, if any.
	}()
	zap.ReplaceGlobals(logger)

	disp := newDispatcher(cfg, flashDuration, flashInterval)

	ctx, cancel := contxt.NewContext(cfg.GoveeCfg.Timeout)
	defer cancel()

	return dispatch(ctx, disp, req, model.DeviceAddress{
		SKU:      cfg.GoveeCfg.SKU,
		DeviceID: cfg.GoveeCfg.DeviceID,
	})
}

func newDispatcher(cfg *config.Config, flashDuration, flashInterval time.Duration) Dispatcher {
	gw := govee.New(cfg.GoveeCfg, nil)

	opts := make([]dispatcher.Option, 0, 2)
	if flashDuration > 0 {
		opts = append(opts, dispatcher.WithFlashDuration(flashDuration))
	}
	if flashInterval > 0 {
		opts = append(opts, dispatcher.WithFlashInterval(flashInterval))
	}
	return dispatcher.New(gw, cfg.GoveeCfg.BaseColor, opts...)
}

// dispatch runs one event through the dispatcher and reports the outcome.
// An error here becomes a non-zero process exit in main.
func dispatch(ctx context.Context, disp Dispatcher, req model.EventRequest, addr model.DeviceAddress) error {
	logger := zap.L()

	outcome, err := disp.Handle(ctx, req, addr)
	if err != nil {
		return err
	}
	if outcome.NoOp {
		logger.Info("no action taken", zap.String("reason", outcome.Description))
		return nil
	}
	logger.Info(outcome.Description,
		zap.String("event", req.Event),
		zap.String("device", addr.DeviceID),
	)
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	logCfg := zap.NewProductionConfig()
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	logCfg.Level = atomicLevel
	logCfg.OutputPaths = []string{"stdout"}
	logCfg.ErrorOutputPaths = []string{"stdout"}
	logCfg.Sampling = nil
	return logCfg.Build(zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}
