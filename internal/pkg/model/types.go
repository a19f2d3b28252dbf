package model

import "github.com/samber/lo"

type CapabilityType string

func (ct CapabilityType) String() string {
	return string(ct)
}

const (
	CapabilityOnOff        CapabilityType = "on_off"
	CapabilityColorSetting CapabilityType = "color_setting"
)

type CapabilityInstance string

func (ci CapabilityInstance) String() string {
	return string(ci)
}

const (
	InstancePowerSwitch CapabilityInstance = "powerSwitch"
	InstanceColorRGB    CapabilityInstance = "colorRgb"
)

// Capability is one controllable attribute of a device. Returned from a
// state read it is a snapshot; sent to control it is a write command.
type Capability struct {
	Type     CapabilityType     `json:"type"`
	Instance CapabilityInstance `json:"instance"`
	Value    any                `json:"value"`
}

// PowerCapability builds a powerSwitch write, value 1 for on and 0 for off.
func PowerCapability(on bool) Capability {
	value := 0
	if on {
		value = 1
	}
	return Capability{
		Type:     CapabilityOnOff,
		Instance: InstancePowerSwitch,
		Value:    value,
	}
}

// ColorCapability builds a colorRgb write carrying a packed RGB integer.
func ColorCapability(rgb int) Capability {
	return Capability{
		Type:     CapabilityColorSetting,
		Instance: InstanceColorRGB,
		Value:    rgb,
	}
}

// DeviceState is the capability snapshot list returned by one state read.
// At most one snapshot exists per (type, instance) pair.
type DeviceState []Capability

func (ds DeviceState) find(ct CapabilityType, ci CapabilityInstance) (Capability, bool) {
	return lo.Find(ds, func(c Capability) bool {
		return c.Type == ct && c.Instance == ci
	})
}

// IsOn reports whether the snapshot contains a powerSwitch capability with value 1.
func (ds DeviceState) IsOn() bool {
	c, ok := ds.find(CapabilityOnOff, InstancePowerSwitch)
	if !ok {
		return false
	}
	value, ok := asInt(c.Value)
	return ok && value == 1
}

// Color returns the packed colorRgb value from the snapshot, if present.
func (ds DeviceState) Color() (int, bool) {
	c, ok := ds.find(CapabilityColorSetting, InstanceColorRGB)
	if !ok {
		return 0, false
	}
	return asInt(c.Value)
}

// asInt normalises capability values decoded from JSON, where numbers
// arrive as float64.
func asInt(v any) (int, bool) {
	switch value := v.(type) {
	case int:
		return value, true
	case int64:
		return int(value), true
	case float64:
		return int(value), true
	default:
		return 0, false
	}
}

// DeviceAddress identifies the target device, fixed for the process lifetime.
type DeviceAddress struct {
	SKU      string
	DeviceID string
}
