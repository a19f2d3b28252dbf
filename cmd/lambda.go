package cmd

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/anicoll/govee-integration/internal/pkg/config"
	"github.com/anicoll/govee-integration/internal/pkg/model"
)

// LambdaResponse is the HTTP-shaped result returned to the invoker. Dispatch
// failures are encoded as a 500 body rather than a handler error, so the
// invoker always receives a structured response.
type LambdaResponse struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// LambdaCommand runs the controller as an aws lambda handler. All
// configuration comes from the environment.
func LambdaCommand(ctx *cli.Context) error {
	cfg, err := config.FromEnv()
	if err != nil {
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

	disp := newDispatcher(cfg, 0, 0)
	lambda.StartWithOptions(newLambdaHandler(disp, cfg), lambda.WithContext(ctx.Context))
	return nil
}

func newLambdaHandler(disp Dispatcher, cfg *config.Config) func(ctx context.Context, req model.EventRequest) (LambdaResponse, error) {
	addr := model.DeviceAddress{
		SKU:      cfg.GoveeCfg.SKU,
		DeviceID: cfg.GoveeCfg.DeviceID,
	}

	return func(ctx context.Context, req model.EventRequest) (LambdaResponse, error) {
		logger := zap.L()

		outcome, err := disp.Handle(ctx, req, addr)
		if err != nil {
			logger.Error("event dispatch failed", zap.String("event", req.Event), zap.Error(err))
			return jsonResponse(http.StatusInternalServerError, map[string]string{"error": err.Error()}), nil
		}

		logger.Info(outcome.Description, zap.String("event", req.Event), zap.Bool("noop", outcome.NoOp))
		return jsonResponse(http.StatusOK, map[string]string{"message": outcome.Description}), nil
	}
}

func jsonResponse(status int, body map[string]string) LambdaResponse {
	data, err := json.Marshal(body)
	if err != nil {
		return LambdaResponse{StatusCode: http.StatusInternalServerError, Body: `{"error":"failed to encode response"}`}
	}
	return LambdaResponse{StatusCode: status, Body: string(data)}
}
