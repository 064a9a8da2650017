package nandc

// Controller is one NAND controller instance: a set of banks on the NEMC bus,
// optional ready/busy and write-protect lines, and the ECC setup negotiated at
// attach time.
//
// A Controller is not safe for concurrent use; the protocol engine serializes
// all calls into it.
type Controller struct {
	// ID identifies the instance in logs.
	ID string

	cfg Config
	log Logger
	mux *mux

	probe *ReadyProbe
	wp    *WriteProtect

	engine Engine
	bridge *Bridge
	mode   CorrectionMode

	geometry Geometry
	ecc      EccGeometry
	layout   OobLayout

	state State
}

// Chips returns the number of chips, which is also one past the highest
// ChipSlot.
func (c *Controller) Chips() int {
	return len(c.mux.banks)
}

// Banks returns the banks in ChipSlot order.
func (c *Controller) Banks() []Bank {
	banks := make([]Bank, len(c.mux.banks))
	copy(banks, c.mux.banks)
	return banks
}

// SelectChip makes slot the target of following strobes and transfers. A
// negative slot deselects, deasserting the bank that was selected.
// SelectChip panics if slot is not a valid ChipSlot.
func (c *Controller) SelectChip(slot ChipSlot) {
	c.mux.selectChip(slot)
}

// Strobe writes p to the selected chip. With CtrlChange set the CLE/ALE bits
// of ctrl pick the window the bytes go to and CtrlNCE is forwarded to the
// arbiter as the chip enable level.
func (c *Controller) Strobe(ctrl Ctrl, p ...byte) error {
	return c.mux.strobe(ctrl, p)
}

// ReadByte reads one byte from the data window of the selected chip.
func (c *Controller) ReadByte() (byte, error) {
	b, addr, err := c.mux.dataAddr()
	if err != nil {
		return 0, err
	}
	return b.win.Read8(addr), nil
}

// ReadBuf fills p from the data window of the selected chip.
func (c *Controller) ReadBuf(p []byte) error {
	b, addr, err := c.mux.dataAddr()
	if err != nil {
		return err
	}
	for i := range p {
		p[i] = b.win.Read8(addr)
	}
	return nil
}

// WriteBuf writes p to the data window of the selected chip.
func (c *Controller) WriteBuf(p []byte) error {
	b, addr, err := c.mux.dataAddr()
	if err != nil {
		return err
	}
	for _, v := range p {
		b.win.Write8(addr, v)
	}
	return nil
}

// Probe returns the ready/busy probe if a busy line was configured. Without
// one, callers wait SettleDelay between commands.
func (c *Controller) Probe() (*ReadyProbe, bool) {
	return c.probe, c.probe != nil
}

// WriteProtect returns the write-protect line if one was configured.
func (c *Controller) WriteProtect() (*WriteProtect, bool) {
	return c.wp, c.wp != nil
}

// Mode returns where ECC is computed.
func (c *Controller) Mode() CorrectionMode { return c.mode }

// Geometry returns the page geometry reported by the protocol engine.
func (c *Controller) Geometry() Geometry { return c.geometry }

// ECC returns the codeword parameters.
func (c *Controller) ECC() EccGeometry { return c.ecc }

// Layout returns the OOB layout.
func (c *Controller) Layout() OobLayout { return c.layout }

// State returns how far attachment got.
func (c *Controller) State() State { return c.state }

// Bridge returns the hardware ECC bridge. It is absent in SoftwareComputed
// mode, where the protocol engine computes BCH itself.
func (c *Controller) Bridge() (*Bridge, bool) {
	return c.bridge, c.bridge != nil
}

// OnTransferStart is the protocol engine's hwctl hook.
func (c *Controller) OnTransferStart(dir Direction) {
	if c.bridge != nil {
		c.bridge.OnTransferStart(dir)
	}
}

// Calculate is the protocol engine's per-step calculate hook.
func (c *Controller) Calculate(data []byte) ([]byte, error) {
	if c.bridge == nil {
		return nil, ErrSoftwareECC
	}
	return c.bridge.Calculate(data)
}

// Correct is the protocol engine's per-step correct hook.
func (c *Controller) Correct(data, code []byte) (int, error) {
	if c.bridge == nil {
		return 0, ErrSoftwareECC
	}
	return c.bridge.Correct(data, code)
}
