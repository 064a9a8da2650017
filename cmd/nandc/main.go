package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

var rootCmd = &cobra.Command{
	Use:   "nandc",
	Short: "Inspect NAND flash chips behind a JZ4780-style NEMC controller.",
	Long: `nandc attaches to the NAND banks of an external memory controller, ` +
		`identifies the chips and prints the ECC layout the driver would use. ` +
		`Defaults for pins and banks are read from NANDC_* variables or a .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log attach steps")
	rootCmd.AddCommand(planCmd, readyCmd, idCmd)
}

func main() {
	// A missing .env is fine; flags and the environment still apply.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fatalf("%v", err)
	}
}

// stdLogger prints attach events with the standard logger.
type stdLogger struct {
	debug bool
}

func (l stdLogger) Debug(msg string, kv ...any) {
	if l.debug {
		log.Println(append([]any{"DEBUG", msg}, kv...)...)
	}
}

func (l stdLogger) Info(msg string, kv ...any) {
	log.Println(append([]any{"INFO", msg}, kv...)...)
}

func (l stdLogger) Error(msg string, kv ...any) {
	log.Println(append([]any{"ERROR", msg}, kv...)...)
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
