package govee

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anicoll/govee-integration/internal/pkg/config"
	"github.com/anicoll/govee-integration/internal/pkg/model"
)

var testAddress = model.DeviceAddress{
	SKU:      "H6159",
	DeviceID: "AA:BB:CC:DD:EE:FF:11:22",
}

func newTestService(t *testing.T, handler http.HandlerFunc) *service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(&config.GoveeConfig{
		APIKey: "test-key",
		APIURL: srv.URL,
		SKU:    testAddress.SKU,
	}, srv.Client())
}

func TestReadState(t *testing.T) {
	var received stateRequest
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/device/state", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Govee-API-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"requestId": received.RequestID,
			"code":      200,
			"msg":       "success",
			"payload": map[string]any{
				"sku":    testAddress.SKU,
				"device": testAddress.DeviceID,
				"capabilities": []map[string]any{
					{"type": "on_off", "instance": "powerSwitch", "state": map[string]any{"value": 1}},
					{"type": "color_setting", "instance": "colorRgb", "state": map[string]any{"value": 16711680}},
				},
			},
		})
	})

	state, err := svc.ReadState(context.Background(), testAddress)
	require.NoError(t, err)

	assert.Equal(t, testAddress.SKU, received.Payload.SKU)
	assert.Equal(t, testAddress.DeviceID, received.Payload.Device)
	_, err = uuid.Parse(received.RequestID)
	assert.NoError(t, err, "every call must carry a fresh uuid request id")

	assert.True(t, state.IsOn())
	color, ok := state.Color()
	require.True(t, ok)
	assert.Equal(t, 0xFF0000, color)
}

func TestReadState_Errors(t *testing.T) {
	tests := map[string]struct {
		handler http.HandlerFunc
		wantErr error
	}{
		"http failure": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: model.ErrTransport,
		},
		"unparseable body": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
			wantErr: model.ErrProtocol,
		},
		"remote rejection": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{"code": 401, "msg": "invalid api key"})
			},
			wantErr: model.ErrTransport,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			svc := newTestService(t, tt.handler)
			_, err := svc.ReadState(context.Background(), testAddress)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestControl(t *testing.T) {
	requestIDs := map[string]struct{}{}
	var received controlRequest
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/device/control", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Govee-API-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		requestIDs[received.RequestID] = struct{}{}

		_ = json.NewEncoder(w).Encode(map[string]any{"requestId": received.RequestID, "code": 200, "msg": "success"})
	})

	err := svc.Control(context.Background(), testAddress, model.PowerCapability(true))
	require.NoError(t, err)
	assert.Equal(t, model.CapabilityOnOff, received.Payload.Capability.Type)
	assert.Equal(t, model.InstancePowerSwitch, received.Payload.Capability.Instance)

	err = svc.Control(context.Background(), testAddress, model.ColorCapability(0x00FF00))
	require.NoError(t, err)
	assert.Equal(t, model.InstanceColorRGB, received.Payload.Capability.Instance)

	assert.Len(t, requestIDs, 2, "each call carries its own request id")
}

func TestControl_TransportError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	err := svc.Control(context.Background(), testAddress, model.PowerCapability(false))
	assert.ErrorIs(t, err, model.ErrTransport)
}
