package nandc

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// SettleDelay is how long a caller without a ReadyProbe waits before issuing
// the next command.
const SettleDelay = 100 * time.Microsecond

// LineRef names an optional GPIO line and its wiring polarity.
type LineRef struct {
	Name      string
	ActiveLow bool
}

// ReadyProbe samples the chip's R/B# line.
type ReadyProbe struct {
	pin       gpio.PinIn
	activeLow bool
}

// NewReadyProbe configures pin as an input and returns a probe for it.
func NewReadyProbe(pin gpio.PinIn, activeLow bool) (*ReadyProbe, error) {
	if err := pin.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
		return nil, err
	}
	return &ReadyProbe{pin: pin, activeLow: activeLow}, nil
}

// Ready reports whether the chip is ready, whatever the line polarity.
func (p *ReadyProbe) Ready() bool {
	return bool(p.pin.Read()) != p.activeLow
}

func (p *ReadyProbe) String() string {
	return p.pin.Name()
}

// WriteProtect drives the chip's WP# line.
type WriteProtect struct {
	pin       gpio.PinOut
	activeLow bool
}

// Release drives the line to its inactive level so the chip accepts program
// and erase commands.
func (w *WriteProtect) Release() error {
	return w.pin.Out(gpio.Level(w.activeLow))
}

// Engage drives the line to its active level.
func (w *WriteProtect) Engage() error {
	return w.pin.Out(gpio.Level(!w.activeLow))
}
