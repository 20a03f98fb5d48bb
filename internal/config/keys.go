package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Output
	KeyOutputFormat = "output_format" // Default flavor for ls
	KeyNoColor      = "no_color"
	KeyVerbose      = "verbose"

	// Behavior
	KeyDefaultURI     = "default_uri"     // URI used by add when none is given
	KeyNonInteractive = "non_interactive" // Refuse prompts
)

// Default values for configuration keys
var Defaults = map[string]interface{}{
	KeyOutputFormat:   "txt",
	KeyNoColor:        false,
	KeyVerbose:        false,
	KeyDefaultURI:     "file://localhost",
	KeyNonInteractive: false,
}
