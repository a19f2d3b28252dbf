package dispatcher

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/anicoll/govee-integration/internal/pkg/model"
	"github.com/anicoll/govee-integration/pkg/hexcolor"
)

const (
	DefaultFlashDuration = 3 * time.Second
	DefaultFlashInterval = 500 * time.Millisecond
)

type gateway interface {
	ReadState(ctx context.Context, addr model.DeviceAddress) (model.DeviceState, error)
	Control(ctx context.Context, addr model.DeviceAddress, capability model.Capability) error
}

// SleepFunc suspends for the given duration or until the context is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Outcome describes to the caller what an invocation did. NoOp is set when
// the event legitimately required no action; it is not an error.
type Outcome struct {
	NoOp        bool
	Description string
}

type service struct {
	gw            gateway
	baseColor     string
	flashDuration time.Duration
	flashInterval time.Duration
	sleep         SleepFunc
	logger        *zap.Logger
}

func New(gw gateway, baseColor string, opts ...Option) *service {
	s := &service{
		gw:            gw,
		baseColor:     baseColor,
		flashDuration: DefaultFlashDuration,
		flashInterval: DefaultFlashInterval,
		sleep:         sleepContext,
		logger:        zap.L(), // returns the global logger.
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle maps one event request onto an ordered sequence of device control
// calls. Every remote call is awaited before the next is issued; nothing
// for the same device is ever in flight concurrently. Errors abort the
// invocation immediately with no compensating rollback.
func (s *service) Handle(ctx context.Context, req model.EventRequest, addr model.DeviceAddress) (Outcome, error) {
	event, err := model.ParseEvent(req.Event)
	if err != nil {
		return Outcome{}, err
	}
	s.logger.Debug("dispatching event",
		zap.String("event", event.String()),
		zap.String("device", addr.DeviceID),
	)

	switch event {
	case model.EventTurnOn:
		return s.setPower(ctx, addr, true)
	case model.EventTurnOff:
		return s.setPower(ctx, addr, false)
	case model.EventSetColor:
		return s.setColor(ctx, addr, req)
	case model.EventReset:
		return s.reset(ctx, addr)
	case model.EventFlash:
		return s.flash(ctx, addr, req.Hex)
	}
	return Outcome{}, fmt.Errorf("%w: %q", model.ErrUnknownEvent, req.Event)
}

// setPower issues a single powerSwitch write, no prior state read.
func (s *service) setPower(ctx context.Context, addr model.DeviceAddress, on bool) (Outcome, error) {
	if err := s.gw.Control(ctx, addr, model.PowerCapability(on)); err != nil {
		return Outcome{}, err
	}
	if on {
		return Outcome{Description: "turned device on"}, nil
	}
	return Outcome{Description: "turned device off"}, nil
}

// setColor reads current state first so the colour write only powers the
// device on when it is actually off. Power-on strictly precedes the colour
// write.
func (s *service) setColor(ctx context.Context, addr model.DeviceAddress, req model.EventRequest) (Outcome, error) {
	if req.Hex == "" {
		return Outcome{}, fmt.Errorf("%w: hex is required for %s", model.ErrMissingParameter, model.EventSetColor)
	}

	state, err := s.gw.ReadState(ctx, addr)
	if err != nil {
		return Outcome{}, err
	}

	if !state.IsOn() {
		if req.PreventOverride {
			s.logger.Info("device is off and override is prevented, taking no action",
				zap.String("device", addr.DeviceID),
			)
			return Outcome{NoOp: true, Description: "device is off, colour not applied"}, nil
		}
		if _, err := s.setPower(ctx, addr, true); err != nil {
			return Outcome{}, err
		}
	}

	rgb, err := hexcolor.ParseHex(req.Hex)
	if err != nil {
		return Outcome{}, err
	}
	if err := s.gw.Control(ctx, addr, model.ColorCapability(rgb.Value())); err != nil {
		return Outcome{}, err
	}
	return Outcome{Description: fmt.Sprintf("set colour to %s", hexcolor.Format(rgb.Value()))}, nil
}

// reset unconditionally powers on and applies the configured base colour,
// without checking current state.
func (s *service) reset(ctx context.Context, addr model.DeviceAddress) (Outcome, error) {
	if _, err := s.setPower(ctx, addr, true); err != nil {
		return Outcome{}, err
	}
	rgb, err := hexcolor.ParseHex(s.baseColor)
	if err != nil {
		return Outcome{}, err
	}
	if err := s.gw.Control(ctx, addr, model.ColorCapability(rgb.Value())); err != nil {
		return Outcome{}, err
	}
	return Outcome{Description: fmt.Sprintf("reset to base colour %s", hexcolor.Format(rgb.Value()))}, nil
}

// flash blinks the device in the requested colour, then restores whatever
// colour the pre-flash read found. A device with no colour capability yet
// restores to the configured base colour instead.
func (s *service) flash(ctx context.Context, addr model.DeviceAddress, hex string) (Outcome, error) {
	if hex == "" {
		hex = s.baseColor
	}

	state, err := s.gw.ReadState(ctx, addr)
	if err != nil {
		return Outcome{}, err
	}
	priorColor, ok := state.Color()
	if !ok {
		base, err := hexcolor.ParseHex(s.baseColor)
		if err != nil {
			return Outcome{}, err
		}
		priorColor = base.Value()
	}

	rgb, err := hexcolor.ParseHex(hex)
	if err != nil {
		return Outcome{}, err
	}
	flashColor := model.ColorCapability(rgb.Value())

	cycles := int(s.flashDuration / (2 * s.flashInterval))
	s.logger.Debug("starting flash sequence",
		zap.String("device", addr.DeviceID),
		zap.String("colour", hexcolor.Format(rgb.Value())),
		zap.Int("cycles", cycles),
		zap.Duration("interval", s.flashInterval),
	)

	for i := 0; i < cycles; i++ {
		if err := s.gw.Control(ctx, addr, model.PowerCapability(true)); err != nil {
			return Outcome{}, err
		}
		if err := s.gw.Control(ctx, addr, flashColor); err != nil {
			return Outcome{}, err
		}
		if err := s.sleep(ctx, s.flashInterval); err != nil {
			return Outcome{}, err
		}
		if err := s.gw.Control(ctx, addr, model.PowerCapability(false)); err != nil {
			return Outcome{}, err
		}
		if err := s.sleep(ctx, s.flashInterval); err != nil {
			return Outcome{}, err
		}
	}

	// restore runs even when cycles is 0.
	if err := s.gw.Control(ctx, addr, model.PowerCapability(true)); err != nil {
		return Outcome{}, err
	}
	if err := s.gw.Control(ctx, addr, model.ColorCapability(priorColor)); err != nil {
		return Outcome{}, err
	}
	return Outcome{Description: fmt.Sprintf("flashed %s and restored %s",
		hexcolor.Format(rgb.Value()), hexcolor.Format(priorColor))}, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
