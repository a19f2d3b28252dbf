package cmd

import (
	"context"

	"github.com/anicoll/govee-integration/internal/pkg/dispatcher"
	"github.com/anicoll/govee-integration/internal/pkg/model"
)

// Dispatcher defines the interface that the cmd adapters expect from the
// event dispatcher.
type Dispatcher interface {
	Handle(ctx context.Context, req model.EventRequest, addr model.DeviceAddress) (dispatcher.Outcome, error)
}
