package config

const (
	// ToolName is printed by the version flag
	ToolName = "Test Case List"
	// Version is the tool's semantic version
	Version = "1.0.0"
	// DefaultConfigFile is read from the working directory when present
	DefaultConfigFile = "tcl.yaml"
	// DefaultEnvFile is loaded from the working directory when present
	DefaultEnvFile = ".env"
	// ConfigFileEnv names an alternative config file
	ConfigFileEnv = "TCL_CONFIG"
	// ExtensionsEnv overrides the suite file extensions (comma separated)
	ExtensionsEnv = "TCL_EXTENSIONS"
	// IgnoreEnv overrides the ignore patterns (comma separated)
	IgnoreEnv = "TCL_IGNORE"
)

// DefaultExtensions are the file extensions read as suites inside a directory
var DefaultExtensions = []string{
	".robot",
	".rbt",
}

// DefaultPathsToIgnore are doublestar patterns, relative to the suite root, skipped while loading
var DefaultPathsToIgnore = []string{
	"**/node_modules/**",
	"**/venv/**",
	"**/results/**",
}
