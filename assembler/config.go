package assembler

import (
	"github.com/sirupsen/logrus"

	"github.com/Urethramancer/terasm/isa"
)

// Config holds the tunable parts of an assembly run.
type Config struct {
	// CommentMarker truncates the rest of a source line.
	CommentMarker string
	// BaseAddress is added to unit addresses in absolute label references.
	BaseAddress int64
}

// DefaultConfig returns the standard settings: ';' comments and the
// architectural load address.
func DefaultConfig() Config {
	return Config{
		CommentMarker: ";",
		BaseAddress:   isa.LoadAddress,
	}
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithConfig replaces the configuration. An empty comment marker keeps the default.
func WithConfig(cfg Config) Option {
	return func(asm *Assembler) {
		if cfg.CommentMarker == "" {
			cfg.CommentMarker = DefaultConfig().CommentMarker
		}
		asm.cfg = cfg
	}
}

// WithLogger sets the logger used for pass diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(asm *Assembler) {
		asm.log = log
	}
}
