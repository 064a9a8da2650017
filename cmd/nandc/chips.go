package main

import "time"

type chipParams struct {
	name string

	pageSize int
	oobSize  int

	tR    time.Duration // page read
	tPROG time.Duration // page program
	tBERS time.Duration // block erase
	tRST  time.Duration // reset
}

// ID bytes: manufacturer, device.
var (
	chipIDMicronMT29F32G08  = [2]byte{0x2C, 0x68}
	chipIDSamsungK9GBG08U0A = [2]byte{0xEC, 0xD7}
	chipIDHynixH27UBG8T2BTR = [2]byte{0xAD, 0xD7}
)

var knownChips = map[[2]byte]chipParams{
	chipIDMicronMT29F32G08: {
		name:     "Micron MT29F32G08",
		pageSize: 4096,
		oobSize:  224,

		// [MT29F32G08|Table: AC Characteristics: Command, Data, and Address Input]
		tR:    50 * time.Microsecond,
		tPROG: 600 * time.Microsecond,
		tBERS: 3 * time.Millisecond,
		tRST:  500 * time.Microsecond,
	},

	chipIDSamsungK9GBG08U0A: {
		name:     "Samsung K9GBG08U0A",
		pageSize: 8192,
		oobSize:  640,

		// [K9GBG08U0A|Program / Erase Characteristics]
		tR:    60 * time.Microsecond,
		tPROG: 1300 * time.Microsecond,
		tBERS: 10 * time.Millisecond,
		tRST:  500 * time.Microsecond,
	},

	chipIDHynixH27UBG8T2BTR: {
		name:     "Hynix H27UBG8T2BTR",
		pageSize: 8192,
		oobSize:  640,

		tR:    90 * time.Microsecond,
		tPROG: 1600 * time.Microsecond,
		tBERS: 5 * time.Millisecond,
		tRST:  500 * time.Microsecond,
	},
}

func lookupChip(id []byte) (chipParams, bool) {
	if len(id) < 2 {
		return chipParams{}, false
	}
	p, ok := knownChips[[2]byte(id[:2])]
	return p, ok
}

// paramOrMax returns the parameter of p, or the maximum over all known chips
// when the chip is unknown.
func paramOrMax(p *chipParams, get func(*chipParams) time.Duration) time.Duration {
	if p != nil {
		return get(p)
	}

	var tmax time.Duration
	for _, param := range knownChips {
		tmax = max(tmax, get(&param))
	}
	return tmax
}
