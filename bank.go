package nandc

import "fmt"

// Window is a memory-mapped bank aperture. Addresses are absolute bus
// addresses inside the mapped resource.
type Window interface {
	Read8(addr uint64) byte
	Write8(addr uint64, v byte)
}

// BankRole is the device type a NEMC bank is configured for.
type BankRole int

const (
	RoleSRAM BankRole = iota
	RoleNAND
)

func (r BankRole) String() string {
	if r == RoleNAND {
		return "nand"
	}
	return "sram"
}

// Arbiter owns the NEMC chip-enable lines shared between controllers.
type Arbiter interface {
	// Configure sets the device type of bank.
	Configure(bank int, role BankRole)
	// Assert drives the chip enable of bank.
	Assert(bank int, enabled bool)
}

// Resource is one bus-address entry of the controller, in discovery order.
type Resource struct {
	Bank int    // bank number as known to the arbiter
	Base uint64 // physical base of the bank window
	Size uint64
}

func (r Resource) String() string {
	return fmt.Sprintf("bank%d@%#x+%#x", r.Bank, r.Base, r.Size)
}

// Bank is one chip enable line of the bus together with its mapped window.
type Bank struct {
	Number int
	Base   uint64
	Size   uint64

	win Window
}

// ChipSlot is the dense, zero based chip index the protocol engine uses.
// Bank numbers behind it may have gaps.
type ChipSlot = int

// Ctrl carries the control lines that accompany a strobe.
type Ctrl uint8

const (
	CtrlNCE    Ctrl = 1 << iota // chip enable
	CtrlCLE                     // command latch enable
	CtrlALE                     // address latch enable
	CtrlChange                  // control lines change with this strobe
)

const noChip = -1

// mux tracks the selected chip and the current write target. It never holds
// more than one bank asserted.
type mux struct {
	banks   []Bank
	arbiter Arbiter

	selected int    // slot or noChip
	target   uint64 // bus address the next strobe byte goes to
}

func newMux(arbiter Arbiter, banks []Bank) *mux {
	return &mux{
		banks:    banks,
		arbiter:  arbiter,
		selected: noChip,
	}
}

func (m *mux) selectChip(slot int) {
	if slot < 0 {
		if m.selected >= 0 {
			m.arbiter.Assert(m.banks[m.selected].Number, false)
			m.selected = noChip
		}
		return
	}
	if slot >= len(m.banks) {
		panic(fmt.Sprintf("nandc: chip %d out of range [0, %d)", slot, len(m.banks)))
	}
	if m.selected >= 0 && m.selected != slot {
		m.arbiter.Assert(m.banks[m.selected].Number, false)
	}

	// The bank is asserted by the first strobe carrying NCE, not here.
	m.selected = slot
	m.target = AddressFor(m.banks[slot].Base, RegionData)
}

func (m *mux) strobe(ctrl Ctrl, p []byte) error {
	b, err := m.bank()
	if err != nil {
		return err
	}

	if ctrl&CtrlChange != 0 {
		m.target = AddressFor(b.Base, regionFor(ctrl))
		m.arbiter.Assert(b.Number, ctrl&CtrlNCE != 0)
	}
	for _, v := range p {
		b.win.Write8(m.target, v)
	}
	return nil
}

func (m *mux) bank() (*Bank, error) {
	if m.selected < 0 {
		return nil, ErrNotSelected
	}
	return &m.banks[m.selected], nil
}

// dataAddr returns the data window address of the selected bank.
func (m *mux) dataAddr() (*Bank, uint64, error) {
	b, err := m.bank()
	if err != nil {
		return nil, 0, err
	}
	return b, AddressFor(b.Base, RegionData), nil
}
