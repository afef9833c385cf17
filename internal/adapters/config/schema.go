package config

// File is the YAML schema of the optional pybundle.yaml build
// configuration placed next to the application source.
type File struct {
	Layout struct {
		// InternalDir overrides the generated-scripts directory name.
		InternalDir string `yaml:"internalDir"`
		// EnvDir overrides the bundled runtime directory name.
		EnvDir string `yaml:"envDir"`
		// LogsDir overrides the failure-log directory name.
		LogsDir string `yaml:"logsDir"`
	} `yaml:"layout"`

	// Excludes are additional glob patterns skipped when copying the
	// source tree. The built-in transient excludes always apply.
	Excludes []string `yaml:"excludes"`

	// ScriptsDir is where the platform setup scripts are copied from.
	ScriptsDir string `yaml:"scriptsDir"`
}
