package main

import (
	"fmt"
	"time"

	"github.com/gentam/nandc"
	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

var readyFlags struct {
	pin       string
	activeLow bool
	wait      time.Duration
}

var readyCmd = &cobra.Command{
	Use:   "ready",
	Short: "Sample the ready/busy line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if readyFlags.pin == "" {
			return fmt.Errorf("no busy line given")
		}
		if err := nandc.InitHost(); err != nil {
			return err
		}
		pin := gpioreg.ByName(readyFlags.pin)
		if pin == nil {
			return fmt.Errorf("gpio %q not found", readyFlags.pin)
		}
		rb, err := nandc.NewReadyProbe(pin, readyFlags.activeLow)
		if err != nil {
			return err
		}

		deadline := time.Now().Add(readyFlags.wait)
		for !rb.Ready() && time.Now().Before(deadline) {
			time.Sleep(time.Millisecond)
		}
		fmt.Printf("%s: %s, ready=%v\n", pin, pin.Read(), rb.Ready())
		return nil
	},
}

func init() {
	f := readyCmd.Flags()
	f.StringVar(&readyFlags.pin, "pin", envOr("NANDC_BUSY_PIN", ""), "ready/busy GPIO line")
	f.BoolVar(&readyFlags.activeLow, "active-low", true, "line is active low")
	f.DurationVar(&readyFlags.wait, "wait", 0, "wait up to this long for the chip to become ready")
}
