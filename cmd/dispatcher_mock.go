package cmd

import (
	"context"
	"errors"

	"github.com/anicoll/govee-integration/internal/pkg/dispatcher"
	"github.com/anicoll/govee-integration/internal/pkg/model"
)

// MockDispatcher is a mock implementation of the Dispatcher interface.
type MockDispatcher struct {
	HandleFunc func(ctx context.Context, req model.EventRequest, addr model.DeviceAddress) (dispatcher.Outcome, error)

	Requests []model.EventRequest
}

func (m *MockDispatcher) Handle(ctx context.Context, req model.EventRequest, addr model.DeviceAddress) (dispatcher.Outcome, error) {
	m.Requests = append(m.Requests, req)
	if m.HandleFunc != nil {
		return m.HandleFunc(ctx, req, addr)
	}
	return dispatcher.Outcome{}, errors.New("mocked Handle not implemented")
}
