package govee

import "github.com/anicoll/govee-integration/internal/pkg/model"

type endpoint string

func (e endpoint) String() string {
	return string(e)
}

const (
	controlEndpoint endpoint = "/device/control"
	stateEndpoint   endpoint = "/device/state"
)

// request envelopes sent to the vendor api. Every request carries a fresh
// requestId used for idempotency and tracing on the remote side.

type controlRequest struct {
	RequestID string         `json:"requestId"`
	Payload   controlPayload `json:"payload"`
}

type controlPayload struct {
	SKU        string           `json:"sku"`
	Device     string           `json:"device"`
	Capability model.Capability `json:"capability"`
}

type stateRequest struct {
	RequestID string       `json:"requestId"`
	Payload   statePayload `json:"payload"`
}

type statePayload struct {
	SKU    string `json:"sku"`
	Device string `json:"device"`
}

type apiResponse[T any] struct {
	RequestID string `json:"requestId"`
	Code      int    `json:"code"`
	Message   string `json:"msg"`
	Payload   T      `json:"payload"`
}

type stateResponsePayload struct {
	SKU          string            `json:"sku"`
	Device       string            `json:"device"`
	Capabilities []stateCapability `json:"capabilities"`
}

// stateCapability is the wire shape of one capability snapshot; the current
// value sits under a nested state object.
type stateCapability struct {
	Type     model.CapabilityType     `json:"type"`
	Instance model.CapabilityInstance `json:"instance"`
	State    capabilityState          `json:"state"`
}

type capabilityState struct {
	Value any `json:"value"`
}
