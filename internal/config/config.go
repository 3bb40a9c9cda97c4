package config

// Defaults and limits for the bithacks command line tool.
const (
	DefaultLogLevel         = "info"
	DefaultFormat           = FormatHex
	DefaultWidth            = 32
	DefaultServerAddress    = "127.0.0.1:9191"
	DefaultMaxClients       = 64
	DefaultReadLimit        = 4096 // Bytes per WebSocket frame
	DefaultPermutationLimit = 4096 // Words listed by the perms command

	// Output formats for word results.
	FormatDec = "dec"
	FormatHex = "hex"
	FormatBin = "bin"

	// DefaultConfigFile is searched for in the working directory when no
	// path is given.
	DefaultConfigFile = "bithacks.yaml"
)

// validWidths are the padding widths accepted for hex/bin output.
var validWidths = map[int]bool{8: true, 16: true, 32: true}

// Default returns the built-in configuration used when no file is found.
func Default() Config {
	return Config{
		Debug:    false,
		LogLevel: DefaultLogLevel,
		Output: OutputConfig{
			Format: DefaultFormat,
			Width:  DefaultWidth,
		},
		Server: ServerConfig{
			Address:    DefaultServerAddress,
			MaxClients: DefaultMaxClients,
			ReadLimit:  DefaultReadLimit,
		},
		Permutations: PermutationConfig{
			Limit: DefaultPermutationLimit,
		},
	}
}
