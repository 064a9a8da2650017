package nandc

import (
	"errors"
	"fmt"
	"sync/atomic"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/pmem"
)

// Board is a Platform backed by /dev/mem and the host's GPIO drivers.
type Board struct {
	// Banks are the bus resources of the controller in discovery order.
	Banks []Resource

	// Engines are the correction engines that can be attached by name.
	Engines map[string]Engine

	nemc  *NEMC
	views []*pmem.View
}

var hostInitialized atomic.Bool

// hostInit is replaced in tests.
var hostInit = func() error {
	_, err := host.Init()
	return err
}

// InitHost loads the periph.io host drivers. Only the first successful call
// does any work.
func InitHost() error {
	if hostInitialized.Load() {
		return nil
	}
	if err := hostInit(); err != nil {
		return fmt.Errorf("host initialization failed: %w", err)
	}
	hostInitialized.Store(true)
	return nil
}

// nemcBanks is the number of static memory banks of the NEMC.
const nemcBanks = 6

func checkBanks(banks []Resource) error {
	for _, r := range banks {
		if r.Bank < 1 || r.Bank > nemcBanks {
			return &ResourceError{
				What: r.String(),
				Err:  fmt.Errorf("bank number out of range [1, %d]", nemcBanks),
			}
		}
	}
	return nil
}

// NewBoard initializes the host drivers and maps the NEMC register block at
// nemcBase. Bank numbers must be in [1, 6].
func NewBoard(nemcBase uint64, banks []Resource) (*Board, error) {
	if err := checkBanks(banks); err != nil {
		return nil, err
	}
	if err := InitHost(); err != nil {
		return nil, err
	}

	var regs *nemcRegisters
	if err := pmem.MapAsPOD(nemcBase, &regs); err != nil {
		return nil, fmt.Errorf("failed to map NEMC registers: %w", err)
	}

	return &Board{
		Banks:   banks,
		Engines: map[string]Engine{},
		nemc:    newNEMC(&regs.nfcsr),
	}, nil
}

func (b *Board) Resources() []Resource { return b.Banks }

func (b *Board) Arbiter() Arbiter { return b.nemc }

// Map maps the bank window of r. The mapping lives until Close.
func (b *Board) Map(r Resource) (Window, error) {
	v, err := pmem.Map(r.Base, int(r.Size))
	if err != nil {
		return nil, err
	}
	b.views = append(b.views, v)
	return &memWindow{mem: v.Slice, base: r.Base}, nil
}

// Line looks up a GPIO line by its host name, e.g. "GPIO20" or "PA20".
func (b *Board) Line(name string) (gpio.PinIO, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("gpio %q not found", name)
	}
	return pin, nil
}

func (b *Board) Engine(ref string) (Engine, error) {
	e, ok := b.Engines[ref]
	if !ok {
		return nil, errors.New("not found")
	}
	return e, nil
}

// Close unmaps all bank windows.
func (b *Board) Close() error {
	var errs []error
	for _, v := range b.views {
		errs = append(errs, v.Close())
	}
	b.views = nil
	return errors.Join(errs...)
}

type memWindow struct {
	mem  []byte
	base uint64
}

func (w *memWindow) Read8(addr uint64) byte     { return w.mem[addr-w.base] }
func (w *memWindow) Write8(addr uint64, v byte) { w.mem[addr-w.base] = v }

// nemcRegisters is the NEMC register block [JZ4780-PM|NEMC Registers].
type nemcRegisters struct {
	_     [0x50]byte // SMCR1-6, SACR1-6
	nfcsr uint32     // NAND Flash Control/Status Register
}

// NEMC is the external memory controller of the JZ4780. Each bank has an
// enable bit and a chip enable bit in NFCSR.
type NEMC struct {
	nfcsr *uint32
}

func newNEMC(nfcsr *uint32) *NEMC {
	return &NEMC{nfcsr: nfcsr}
}

// NFCSR bit pairs, banks are numbered from 1.
func nfcsrEnable(bank int) uint32     { return 1 << ((bank - 1) << 1) }
func nfcsrChipEnable(bank int) uint32 { return 1 << (((bank - 1) << 1) + 1) }

// Configure sets bank up as NAND or SRAM.
func (n *NEMC) Configure(bank int, role BankRole) {
	if role == RoleNAND {
		*n.nfcsr |= nfcsrEnable(bank)
	} else {
		*n.nfcsr &^= nfcsrEnable(bank)
	}
}

// Assert drives the chip enable of a NAND bank.
func (n *NEMC) Assert(bank int, enabled bool) {
	if enabled {
		*n.nfcsr |= nfcsrChipEnable(bank)
	} else {
		*n.nfcsr &^= nfcsrChipEnable(bank)
	}
}
