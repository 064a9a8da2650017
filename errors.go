package nandc

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSelected is returned when a strobe or transfer is issued with no
	// chip selected. It indicates a protocol engine bug.
	ErrNotSelected = errors.New("nandc: no chip selected")

	// ErrNoBanks is returned by Attach when the platform reports no bus
	// resources.
	ErrNoBanks = errors.New("nandc: no banks")

	// ErrUncorrectable is what a correction engine returns when a step holds
	// more bit errors than the configured strength.
	ErrUncorrectable = errors.New("nandc: uncorrectable ECC error")

	// ErrSoftwareECC is returned by the hardware ECC hooks when the
	// controller computes ECC in software.
	ErrSoftwareECC = errors.New("nandc: hardware ECC not in use")
)

// LayoutError indicates that the requested ECC parameters do not fit the
// chip geometry.
type LayoutError struct {
	PageSize int
	OOBSize  int
	Step     int
	Strength int
	ECCBytes int
	Reason   string
}

func (e *LayoutError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid ECC config: %s (page %d, oob %d, step %d, strength %d)",
			e.Reason, e.PageSize, e.OOBSize, e.Step, e.Strength)
	}
	return fmt.Sprintf("invalid ECC config: required %d ECC bytes, but only %d are available",
		e.ECCBytes, e.OOBSize-oobReserved)
}

// ResourceError indicates that a bus resource or a GPIO line could not be
// acquired.
type ResourceError struct {
	What string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("failed to acquire %s: %v", e.What, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// EngineError indicates that a correction engine was requested but could not
// be attached.
type EngineError struct {
	Ref string
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("failed to attach BCH engine %q: %v", e.Ref, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }
