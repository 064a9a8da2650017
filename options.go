package nandc

// Config holds the attach configuration.
type Config struct {
	// ECCStep is the requested data bytes per ECC step; 0 selects the default.
	ECCStep int

	// ECCStrength is the requested correctable bits per step; 0 selects the
	// default.
	ECCStrength int

	// Engine references a BCH correction engine. Empty means software ECC.
	Engine string

	// BusyLine is the optional R/B# line.
	BusyLine *LineRef

	// WriteProtectLine is the optional WP# line.
	WriteProtectLine *LineRef

	Logger Logger
}

func defaultConfig() Config {
	return Config{Logger: nopLogger{}}
}

// Option configures Attach.
type Option func(*Config)

// WithECCStep requests the number of data bytes per ECC step. Non-positive
// values are ignored.
func WithECCStep(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.ECCStep = n
		}
	}
}

// WithECCStrength requests the number of correctable bits per ECC step.
// Non-positive values are ignored.
func WithECCStrength(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.ECCStrength = n
		}
	}
}

// WithEngine offloads ECC to the BCH engine the platform knows as ref.
// Attach fails if the engine cannot be reached.
//
// Example:
//
//	c, err := nandc.Attach(ctx, board, host, nandc.WithEngine("bch"))
func WithEngine(ref string) Option {
	return func(c *Config) {
		c.Engine = ref
	}
}

// WithBusyLine samples the named GPIO line for chip readiness.
func WithBusyLine(name string, activeLow bool) Option {
	return func(c *Config) {
		c.BusyLine = &LineRef{Name: name, ActiveLow: activeLow}
	}
}

// WithWriteProtectLine drives the named GPIO line as the chip's WP#.
func WithWriteProtectLine(name string, activeLow bool) Option {
	return func(c *Config) {
		c.WriteProtectLine = &LineRef{Name: name, ActiveLow: activeLow}
	}
}

// WithLogger sets the logger for attach and teardown.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}
