package nandc

// CorrectionMode is where ECC is computed. It is fixed at attachment.
type CorrectionMode int

const (
	SoftwareComputed CorrectionMode = iota
	HardwareOffload
)

func (m CorrectionMode) String() string {
	if m == HardwareOffload {
		return "hw"
	}
	return "soft_bch"
}

// Direction of a page transfer announced by the protocol engine.
type Direction int

const (
	Read Direction = iota
	Write
)

// Engine is an attached BCH correction engine. An engine may be shared by
// several controllers; it serializes its own users.
type Engine interface {
	// Encode returns the parity bytes for one step of data.
	Encode(p EccGeometry, data []byte) ([]byte, error)
	// Correct fixes data in place using the code read from the OOB and
	// returns the number of corrected bits, or ErrUncorrectable.
	Correct(p EccGeometry, data, code []byte) (int, error)
	// Release gives the engine back.
	Release()
}

// Bridge adapts the protocol engine's per-step ECC hooks to an Engine.
type Bridge struct {
	engine  Engine
	params  EccGeometry
	reading bool
}

func newBridge(engine Engine, params EccGeometry) *Bridge {
	return &Bridge{engine: engine, params: params}
}

// OnTransferStart records the direction of the transfer that follows.
func (b *Bridge) OnTransferStart(dir Direction) {
	b.reading = dir == Read
}

// Calculate returns the parity bytes for data. On reads the engine produces
// them while decoding, so nothing is computed here.
func (b *Bridge) Calculate(data []byte) ([]byte, error) {
	if b.reading {
		return nil, nil
	}
	return b.engine.Encode(b.params, data)
}

// Correct corrects data against the code read from the media. Failures are
// returned as-is; the protocol engine decides what happens to the page.
func (b *Bridge) Correct(data, code []byte) (int, error) {
	return b.engine.Correct(b.params, data, code)
}

// Params returns the codeword parameters the bridge passes to the engine.
func (b *Bridge) Params() EccGeometry { return b.params }
