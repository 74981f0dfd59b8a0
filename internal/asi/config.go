package asi

// Config is the immutable configuration of the termination pass, resolved
// once per compilation unit before the pass begins.
type Config struct {
	// Enabled gates the whole pass. When false the token stream passes
	// through untouched and the parser demands explicit ';' everywhere.
	Enabled bool
}

// DefaultConfig enables newline termination.
func DefaultConfig() Config {
	return Config{Enabled: true}
}
