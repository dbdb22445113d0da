package cli

import "tcl/internal/config"

// Flags holds command-line flags
type Flags struct {
	Suite string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Suite: f.Suite,
	}
}
