package govee

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/anicoll/govee-integration/internal/pkg/config"
	"github.com/anicoll/govee-integration/internal/pkg/model"
)

const apiKeyHeader = "Govee-API-Key"

type service struct {
	cfg    *config.GoveeConfig
	client *http.Client
	logger *zap.Logger
}

func New(cfg *config.GoveeConfig, client *http.Client) *service {
	if client == nil {
		client = http.DefaultClient
	}
	return &service{
		cfg:    cfg,
		client: client,
		logger: zap.L(), // returns the global logger.
	}
}

// ReadState issues a single state read for the addressed device. No retry;
// the caller decides what a failure means.
func (s *service) ReadState(ctx context.Context, addr model.DeviceAddress) (model.DeviceState, error) {
	requestID := uuid.NewString()
	body := stateRequest{
		RequestID: requestID,
		Payload: statePayload{
			SKU:    addr.SKU,
			Device: addr.DeviceID,
		},
	}
	s.logger.Debug("reading device state",
		zap.String("device", addr.DeviceID),
		zap.String("request_id", requestID),
	)

	var resp apiResponse[stateResponsePayload]
	if err := s.post(ctx, stateEndpoint, body, &resp); err != nil {
		return nil, err
	}
	if err := remoteError(stateEndpoint, resp.Code, resp.Message); err != nil {
		return nil, err
	}

	state := make(model.DeviceState, 0, len(resp.Payload.Capabilities))
	for _, c := range resp.Payload.Capabilities {
		state = append(state, model.Capability{
			Type:     c.Type,
			Instance: c.Instance,
			Value:    c.State.Value,
		})
	}
	return state, nil
}

// Control issues a single capability write. Fire and forget: no
// confirmation read is performed, callers re-read if they need one.
func (s *service) Control(ctx context.Context, addr model.DeviceAddress, capability model.Capability) error {
	requestID := uuid.NewString()
	body := controlRequest{
		RequestID: requestID,
		Payload: controlPayload{
			SKU:        addr.SKU,
			Device:     addr.DeviceID,
			Capability: capability,
		},
	}
	s.logger.Debug("sending capability control",
		zap.String("device", addr.DeviceID),
		zap.String("capability_type", capability.Type.String()),
		zap.String("capability_instance", capability.Instance.String()),
		zap.Any("value", capability.Value),
		zap.String("request_id", requestID),
	)

	var resp apiResponse[json.RawMessage]
	if err := s.post(ctx, controlEndpoint, body, &resp); err != nil {
		return err
	}
	return remoteError(controlEndpoint, resp.Code, resp.Message)
}

// remoteError maps a non-success code in an otherwise well-formed response
// body to a transport failure. A zero code means the field was absent.
func remoteError(ep endpoint, code int, msg string) error {
	if code == 0 || code == http.StatusOK {
		return nil
	}
	return fmt.Errorf("%w: %s rejected with code %d: %s", model.ErrTransport, ep, code, msg)
}

func (s *service) post(ctx context.Context, ep endpoint, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrProtocol, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL+ep.String(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, s.cfg.APIKey)

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrTransport, err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s returned status %d", model.ErrTransport, ep, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %v", model.ErrProtocol, ep, err)
	}
	return nil
}
