package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gentam/nandc"
	"github.com/spf13/cobra"
)

// Each NEMC bank decodes a 16MB window [JZ4780-PM|NEMC Memory Map].
const bankWindowSize = 0x1000000

var idFlags struct {
	nemc           string
	banks          string
	busy, wp       string
	busyActiveLow  bool
	wpActiveLow    bool
	step, strength int
}

var idCmd = &cobra.Command{
	Use:   "id",
	Short: "Attach to the NAND banks, identify the chips and print the ECC setup",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nemcBase, err := strconv.ParseUint(idFlags.nemc, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid NEMC base %q: %w", idFlags.nemc, err)
		}
		banks, err := parseBanks(idFlags.banks)
		if err != nil {
			return err
		}

		board, err := nandc.NewBoard(nemcBase, banks)
		if err != nil {
			return err
		}
		defer board.Close()

		opts := []nandc.Option{
			nandc.WithECCStep(idFlags.step),
			nandc.WithECCStrength(idFlags.strength),
			nandc.WithLogger(stdLogger{debug: verbose}),
		}
		if idFlags.busy != "" {
			opts = append(opts, nandc.WithBusyLine(idFlags.busy, idFlags.busyActiveLow))
		}
		if idFlags.wp != "" {
			opts = append(opts, nandc.WithWriteProtectLine(idFlags.wp, idFlags.wpActiveLow))
		}

		host := &idHost{}
		c, err := nandc.Attach(cmd.Context(), board, host, opts...)
		if err != nil {
			return err
		}
		defer c.Detach()

		printChips(c, host)
		printLayout(c.Geometry(), c.ECC(), c.Layout())
		return nil
	},
}

func init() {
	f := idCmd.Flags()
	f.StringVar(&idFlags.nemc, "nemc", envOr("NANDC_NEMC", "0x13410000"), "NEMC register base")
	f.StringVar(&idFlags.banks, "banks", envOr("NANDC_BANKS", "1:0x1b000000"), "comma separated bank:base list")
	f.StringVar(&idFlags.busy, "busy", envOr("NANDC_BUSY_PIN", ""), "ready/busy GPIO line")
	f.BoolVar(&idFlags.busyActiveLow, "busy-active-low", true, "busy line is active low")
	f.StringVar(&idFlags.wp, "wp", envOr("NANDC_WP_PIN", ""), "write-protect GPIO line")
	f.BoolVar(&idFlags.wpActiveLow, "wp-active-low", true, "write-protect line is active low")
	f.IntVar(&idFlags.step, "step", 0, "ECC step size (default 1024)")
	f.IntVar(&idFlags.strength, "strength", 0, "ECC strength in bits per step (default 24)")
}

// parseBanks parses "1:0x1b000000,6:0x20000000" into resources.
func parseBanks(s string) ([]nandc.Resource, error) {
	var res []nandc.Resource
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		num, base, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("invalid bank %q: want bank:base", field)
		}
		bank, err := strconv.Atoi(num)
		if err != nil || bank < 1 {
			return nil, fmt.Errorf("invalid bank number %q", num)
		}
		addr, err := strconv.ParseUint(base, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bank base %q: %w", base, err)
		}
		res = append(res, nandc.Resource{Bank: bank, Base: addr, Size: bankWindowSize})
	}
	if len(res) == 0 {
		return nil, nandc.ErrNoBanks
	}
	return res, nil
}

func printChips(c *nandc.Controller, h *idHost) {
	banks := c.Banks()
	for chip, id := range h.ids {
		fmt.Printf("Chip %d:          bank %d, ID %X, status %s\n", chip, banks[chip].Number, id, h.status[chip])
	}
	if h.params != nil {
		fmt.Printf("Name:            %s\n", h.params.name)
	}
	fmt.Printf("ECC mode:        %s\n", c.Mode())
	if p, ok := c.Probe(); ok {
		fmt.Printf("Ready:           %v (%s)\n", p.Ready(), p)
	}
}
