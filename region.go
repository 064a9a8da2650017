package nandc

// Region selects which strobe window of a bank a bus write lands in.
//
// The NEMC decodes two address lines of a NAND bank as CLE and ALE, so every
// bank exposes three aliases of the same data lines [JZ4780-PM|NEMC NAND Flash].
type Region int

const (
	RegionData Region = iota
	RegionCommand
	RegionAddress
)

const (
	offsetData    = 0x00000000
	offsetCommand = 0x00400000 // CLE
	offsetAddress = 0x00800000 // ALE
)

// Offset returns the byte offset of the region within a bank window.
func (r Region) Offset() uint64 {
	switch r {
	case RegionCommand:
		return offsetCommand
	case RegionAddress:
		return offsetAddress
	default:
		return offsetData
	}
}

func (r Region) String() string {
	switch r {
	case RegionData:
		return "data"
	case RegionCommand:
		return "command"
	case RegionAddress:
		return "address"
	}
	return "unknown"
}

// AddressFor returns the bus address of region r in the bank mapped at base.
func AddressFor(base uint64, r Region) uint64 {
	return base + r.Offset()
}

// regionFor decodes the latch-enable bits of a control change. ALE wins over
// CLE; neither means a plain data access.
func regionFor(ctrl Ctrl) Region {
	switch {
	case ctrl&CtrlALE != 0:
		return RegionAddress
	case ctrl&CtrlCLE != 0:
		return RegionCommand
	}
	return RegionData
}
