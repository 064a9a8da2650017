package main

import (
	"fmt"

	"github.com/gentam/nandc"
	"github.com/spf13/cobra"
)

var planFlags struct {
	page, oob      int
	step, strength int
	positions      bool
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the ECC and OOB layout for a page geometry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g := nandc.Geometry{PageSize: planFlags.page, OOBSize: planFlags.oob}
		ecc, layout, err := nandc.Plan(g, planFlags.step, planFlags.strength)
		if err != nil {
			return err
		}
		printLayout(g, ecc, layout)
		if planFlags.positions {
			fmt.Println("ECC positions:", layout.ECCPositions())
		}
		return nil
	},
}

func init() {
	f := planCmd.Flags()
	f.IntVar(&planFlags.page, "page", 2048, "page size in bytes")
	f.IntVar(&planFlags.oob, "oob", 64, "OOB size in bytes")
	f.IntVar(&planFlags.step, "step", 0, "ECC step size (default 1024)")
	f.IntVar(&planFlags.strength, "strength", 0, "ECC strength in bits per step (default 24)")
	f.BoolVar(&planFlags.positions, "positions", false, "list every ECC byte offset")
}

func printLayout(g nandc.Geometry, ecc nandc.EccGeometry, layout nandc.OobLayout) {
	fmt.Printf("Page:            %d\n", g.PageSize)
	fmt.Printf("OOB:             %d\n", g.OOBSize)
	fmt.Printf("ECC step:        %d\n", ecc.Step)
	fmt.Printf("ECC strength:    %d\n", ecc.Strength)
	fmt.Printf("ECC bytes/step:  %d\n", ecc.Bytes)
	fmt.Printf("ECC bytes:       %d @ [%d, %d)\n", layout.ECCBytes, layout.ECC.Offset, layout.ECC.End())
	for _, r := range layout.Free {
		fmt.Printf("Free:            %d @ [%d, %d)\n", r.Length, r.Offset, r.End())
	}
}
