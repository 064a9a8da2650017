// Package nandc drives raw NAND flash chips hanging off a multi-bank external
// memory controller (NEMC) bus. It provides the chip-level primitives a NAND
// protocol engine calls into: chip select, command/address/data strobes,
// ready/busy sampling and ECC calculate/correct through an optional BCH
// engine. Attach wires everything together in the order the hardware needs.
//
// # References:
//
// SoC
//   - [JZ4780-PM]: Ingenic JZ4780 Programming Manual, NEMC and BCH chapters
//
// NAND
//   - [ONFI-4.0]: Open NAND Flash Interface Specification, Revision 4.0 (https://onfi.org/specs.html)
//   - [MT29F32G08]: Micron MT29F32G08 NAND Flash Memory datasheet
//   - [K9GBG08U0A]: Samsung K9GBG08U0A NAND Flash Memory datasheet
//
// GPIO
//   - [periph]: periph.io GPIO and physical memory access (https://periph.io/)
package nandc
