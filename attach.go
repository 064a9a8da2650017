package nandc

import (
	"context"
	"fmt"

	"github.com/rs/xid"
	"periph.io/x/conn/v3/gpio"
)

// State is the attach progress of a Controller.
type State int

const (
	StateStart State = iota
	StateBanksDiscovered
	StateEngineAttached
	StateGeometryIdentified
	StateEccPlanned
	StateFinalized
	StateRegistered
	StateDetached
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateBanksDiscovered:
		return "banks-discovered"
	case StateEngineAttached:
		return "engine-attached"
	case StateGeometryIdentified:
		return "geometry-identified"
	case StateEccPlanned:
		return "ecc-planned"
	case StateFinalized:
		return "finalized"
	case StateRegistered:
		return "registered"
	case StateDetached:
		return "detached"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Platform provides the hardware resources of one controller instance. It
// owns the mapped windows and lines it hands out and releases them itself.
type Platform interface {
	// Resources lists the bus-address entries in discovery order.
	Resources() []Resource
	// Map maps the window of r.
	Map(r Resource) (Window, error)
	// Line acquires a GPIO line by name.
	Line(name string) (gpio.PinIO, error)
	// Engine attaches the correction engine known as ref.
	Engine(ref string) (Engine, error)
	// Arbiter returns the NEMC the banks hang off.
	Arbiter() Arbiter
}

// Host is the NAND protocol engine the controller plugs into.
type Host interface {
	// Identify detects the chips and returns their page geometry. ECC is not
	// set up yet.
	Identify(ctx context.Context, c *Controller, maxChips int) (Geometry, error)
	// Finalize completes the setup once the ECC parameters are known.
	Finalize(ctx context.Context, c *Controller) error
	// Register exposes the device.
	Register(ctx context.Context, c *Controller) error
	// Unregister reverses Finalize and Register.
	Unregister(c *Controller)
}

// Attach brings up a controller on the resources of pf and hands it to host:
//  1. Map every bank and configure it for NAND on the arbiter
//  2. Acquire the busy and write-protect lines, if configured
//  3. Attach the BCH engine, if configured
//  4. Let the host identify the chips
//  5. Plan the ECC layout for the reported geometry
//  6. Let the host finalize and register the device
//
// A failure from step 4 on releases the engine before returning. No partially
// attached controller is ever returned.
func Attach(ctx context.Context, pf Platform, host Host, opts ...Option) (*Controller, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Controller{
		ID:    xid.New().String(),
		cfg:   cfg,
		log:   cfg.Logger,
		state: StateStart,
	}

	arbiter := pf.Arbiter()
	banks, err := c.discover(pf, arbiter)
	if err != nil {
		return nil, err
	}
	c.mux = newMux(arbiter, banks)
	c.advance(StateBanksDiscovered, "banks", len(banks))

	if err := c.acquireLines(pf); err != nil {
		return nil, err
	}

	if cfg.Engine != "" {
		engine, err := pf.Engine(cfg.Engine)
		if err != nil {
			return nil, &EngineError{Ref: cfg.Engine, Err: err}
		}
		c.engine = engine
		c.advance(StateEngineAttached, "engine", cfg.Engine)
	}

	if err := ctx.Err(); err != nil {
		return nil, c.rollback(fmt.Errorf("cancelled: %w", err))
	}

	g, err := host.Identify(ctx, c, len(banks))
	if err != nil {
		return nil, c.rollback(fmt.Errorf("identify: %w", err))
	}
	c.geometry = g
	c.advance(StateGeometryIdentified, "page", g.PageSize, "oob", g.OOBSize)

	if err := c.planECC(); err != nil {
		return nil, c.rollback(err)
	}
	c.state = StateEccPlanned
	c.log.Info("ecc", "id", c.ID,
		"mode", c.mode,
		"strength", c.ecc.Strength,
		"step", c.ecc.Step,
		"bytes", c.ecc.Bytes,
		"eccbytes", c.layout.ECCBytes,
	)

	if err := ctx.Err(); err != nil {
		return nil, c.rollback(fmt.Errorf("cancelled: %w", err))
	}

	if err := host.Finalize(ctx, c); err != nil {
		return nil, c.rollback(fmt.Errorf("finalize: %w", err))
	}
	c.advance(StateFinalized)

	if err := host.Register(ctx, c); err != nil {
		host.Unregister(c)
		return nil, c.rollback(fmt.Errorf("register: %w", err))
	}
	c.advance(StateRegistered)

	return c, nil
}

// Detach deselects the chips and releases the BCH engine. Mapped windows and
// the host's state are released by their owners. Detach is idempotent.
func (c *Controller) Detach() {
	if c.state == StateDetached {
		return
	}
	c.mux.selectChip(noChip)
	c.releaseEngine()
	c.state = StateDetached
	c.log.Info("detached", "id", c.ID)
}

func (c *Controller) discover(pf Platform, arbiter Arbiter) ([]Bank, error) {
	resources := pf.Resources()
	if len(resources) == 0 {
		return nil, ErrNoBanks
	}

	banks := make([]Bank, 0, len(resources))
	for slot, r := range resources {
		win, err := pf.Map(r)
		if err != nil {
			return nil, &ResourceError{What: r.String(), Err: err}
		}
		arbiter.Configure(r.Bank, RoleNAND)
		banks = append(banks, Bank{
			Number: r.Bank,
			Base:   r.Base,
			Size:   r.Size,
			win:    win,
		})
		c.log.Debug("bank", "id", c.ID, "chip", slot, "bank", r.Bank, "base", fmt.Sprintf("%#x", r.Base))
	}
	return banks, nil
}

func (c *Controller) acquireLines(pf Platform) error {
	if ref := c.cfg.BusyLine; ref != nil {
		pin, err := pf.Line(ref.Name)
		if err != nil {
			return &ResourceError{What: "busy line " + ref.Name, Err: err}
		}
		probe, err := NewReadyProbe(pin, ref.ActiveLow)
		if err != nil {
			return &ResourceError{What: "busy line " + ref.Name, Err: err}
		}
		c.probe = probe
	}

	if ref := c.cfg.WriteProtectLine; ref != nil {
		pin, err := pf.Line(ref.Name)
		if err != nil {
			return &ResourceError{What: "write-protect line " + ref.Name, Err: err}
		}
		c.wp = &WriteProtect{pin: pin, activeLow: ref.ActiveLow}
		if err := c.wp.Release(); err != nil {
			return &ResourceError{What: "write-protect line " + ref.Name, Err: err}
		}
	}
	return nil
}

func (c *Controller) planECC() error {
	ecc, layout, err := Plan(c.geometry, c.cfg.ECCStep, c.cfg.ECCStrength)
	if err != nil {
		return err
	}
	c.ecc = ecc
	c.layout = layout

	if c.engine != nil {
		c.mode = HardwareOffload
		c.bridge = newBridge(c.engine, ecc)
	} else {
		c.mode = SoftwareComputed
	}
	return nil
}

// rollback undoes the engine attachment of a failed Attach.
func (c *Controller) rollback(err error) error {
	c.log.Error("attach failed", "id", c.ID, "state", c.state, "err", err)
	c.releaseEngine()
	return err
}

func (c *Controller) releaseEngine() {
	if c.engine == nil {
		return
	}
	c.engine.Release()
	c.engine = nil
	c.bridge = nil
}

func (c *Controller) advance(s State, keysAndValues ...any) {
	c.state = s
	c.log.Debug(s.String(), append([]any{"id", c.ID}, keysAndValues...)...)
}
