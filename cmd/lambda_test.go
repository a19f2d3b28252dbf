package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/anicoll/govee-integration/internal/pkg/config"
	"github.com/anicoll/govee-integration/internal/pkg/dispatcher"
	"github.com/anicoll/govee-integration/internal/pkg/model"
)

func testConfig() *config.Config {
	return &config.Config{
		GoveeCfg: &config.GoveeConfig{
			APIKey:    "test-key",
			SKU:       testAddress.SKU,
			DeviceID:  testAddress.DeviceID,
			BaseColor: "FFFFFF",
		},
		LogLevel: "INFO",
	}
}

func TestLambdaHandler_Success(t *testing.T) {
	zap.ReplaceGlobals(zaptest.NewLogger(t))

	mock := &MockDispatcher{
		HandleFunc: func(ctx context.Context, req model.EventRequest, addr model.DeviceAddress) (dispatcher.Outcome, error) {
			assert.Equal(t, testAddress, addr)
			return dispatcher.Outcome{Description: "set colour to FF0000"}, nil
		},
	}
	handler := newLambdaHandler(mock, testConfig())

	resp, err := handler(context.Background(), model.EventRequest{Event: "set_color", Hex: "FF0000"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "set colour to FF0000", body["message"])
}

func TestLambdaHandler_DispatchFailure(t *testing.T) {
	zap.ReplaceGlobals(zaptest.NewLogger(t))

	mock := &MockDispatcher{
		HandleFunc: func(ctx context.Context, req model.EventRequest, addr model.DeviceAddress) (dispatcher.Outcome, error) {
			return dispatcher.Outcome{}, model.ErrMissingParameter
		},
	}
	handler := newLambdaHandler(mock, testConfig())

	resp, err := handler(context.Background(), model.EventRequest{Event: "set_color"})
	require.NoError(t, err, "dispatch failures are encoded in the response, not returned")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Contains(t, body["error"], "missing required parameter")
}
