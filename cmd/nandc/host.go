package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gentam/nandc"
)

// NAND commands [ONFI-4.0|5.1 Command Set]
const (
	nandCmdReadID     = 0x90
	nandCmdReadStatus = 0x70
	nandCmdReset      = 0xFF
)

const idLen = 5

// idHost is a minimal protocol engine: it resets and identifies the chips
// and reports what it found. It never reads or programs pages.
type idHost struct {
	ids    [][]byte
	status []statusRegister
	params *chipParams

	registered bool
}

func (h *idHost) Identify(ctx context.Context, c *nandc.Controller, maxChips int) (nandc.Geometry, error) {
	for chip := 0; chip < maxChips; chip++ {
		id, err := h.readID(ctx, c, chip)
		if err != nil {
			return nandc.Geometry{}, fmt.Errorf("chip %d: %w", chip, err)
		}
		// Only identical chips can share one controller.
		if chip > 0 && !bytes.Equal(id, h.ids[0]) {
			h.status = h.status[:chip]
			break
		}
		h.ids = append(h.ids, id)
	}

	p, ok := lookupChip(h.ids[0])
	if !ok {
		return nandc.Geometry{}, fmt.Errorf("unknown chip ID %X", h.ids[0])
	}
	h.params = &p
	return nandc.Geometry{PageSize: p.pageSize, OOBSize: p.oobSize}, nil
}

func (h *idHost) Finalize(ctx context.Context, c *nandc.Controller) error {
	if c.Mode() == nandc.HardwareOffload {
		if _, ok := c.Bridge(); !ok {
			return fmt.Errorf("hardware ECC without a bridge")
		}
	}
	return nil
}

func (h *idHost) Register(ctx context.Context, c *nandc.Controller) error {
	h.registered = true
	return nil
}

func (h *idHost) Unregister(c *nandc.Controller) {
	h.registered = false
}

func (h *idHost) readID(ctx context.Context, c *nandc.Controller, chip int) ([]byte, error) {
	c.SelectChip(chip)
	defer c.SelectChip(-1)

	const (
		cmd  = nandc.CtrlChange | nandc.CtrlNCE | nandc.CtrlCLE
		addr = nandc.CtrlChange | nandc.CtrlNCE | nandc.CtrlALE
		data = nandc.CtrlChange | nandc.CtrlNCE
	)

	if err := c.Strobe(cmd, nandCmdReset); err != nil {
		return nil, err
	}
	if err := waitReady(ctx, c, 10*time.Microsecond, paramOrMax(h.params, tRST)); err != nil {
		return nil, err
	}

	if err := c.Strobe(cmd, nandCmdReadStatus); err != nil {
		return nil, err
	}
	if err := c.Strobe(data); err != nil {
		return nil, err
	}
	sr, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	h.status = append(h.status, statusRegister(sr))

	if err := c.Strobe(cmd, nandCmdReadID); err != nil {
		return nil, err
	}
	if err := c.Strobe(addr, 0x00); err != nil {
		return nil, err
	}
	if err := c.Strobe(data); err != nil {
		return nil, err
	}

	id := make([]byte, idLen)
	if err := c.ReadBuf(id); err != nil {
		return nil, err
	}
	return id, nil
}

func tRST(p *chipParams) time.Duration { return p.tRST }

// waitReady polls the ready/busy line with the given interval until the chip
// is ready or timeout expires. Without a busy line it waits
// nandc.SettleDelay.
func waitReady(ctx context.Context, c *nandc.Controller, interval, timeout time.Duration) error {
	rb, ok := c.Probe()
	if !ok {
		time.Sleep(nandc.SettleDelay)
		return nil
	}

	// Fast path
	if rb.Ready() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("chip busy on %s: %w", rb, ctx.Err())
		case <-ticker.C:
			if rb.Ready() {
				return nil
			}
		}
	}
}

// statusRegister is the result of READ STATUS.
//
//	Bits| [ONFI-4.0|5.13 Read Status]
//	----+----------------------------------
//	7   | WP#: 0 when write protected
//	6   | RDY: ready for another command
//	5   | ARDY: array operation complete
//	1   | FAILC: previous operation failed
//	0   | FAIL: last operation failed
type statusRegister byte

func (sr statusRegister) WriteProtected() bool { return sr&(1<<7) == 0 }
func (sr statusRegister) Ready() bool          { return sr&(1<<6) != 0 }
func (sr statusRegister) ArrayReady() bool     { return sr&(1<<5) != 0 }
func (sr statusRegister) FailC() bool          { return sr&(1<<1) != 0 }
func (sr statusRegister) Fail() bool           { return sr&(1<<0) != 0 }

func (sr statusRegister) String() string {
	b := fmt.Sprintf("%08b", byte(sr))
	s := []string{}
	if sr.WriteProtected() {
		s = append(s, "WP")
	}
	if sr.Ready() {
		s = append(s, "RDY")
	}
	if sr.ArrayReady() {
		s = append(s, "ARDY")
	}
	if sr.FailC() {
		s = append(s, "FAILC")
	}
	if sr.Fail() {
		s = append(s, "FAIL")
	}
	if len(s) == 0 {
		return b
	}
	return b + " " + strings.Join(s, ",")
}
