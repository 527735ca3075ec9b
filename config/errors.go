package config

// ConfigurationError reports invalid configuration. It carries the full
// offending settings map for diagnostics and is deliberately unrelated to
// the errchain taxonomy: it is raised directly by configuration logic, not
// derived from a failure chain.
type ConfigurationError struct {
	msg      string
	settings map[string]any
}

func newConfigurationError(msg string, settings map[string]any) *ConfigurationError {
	return &ConfigurationError{msg: msg, settings: settings}
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

// Settings returns a copy of the settings that failed validation.
func (e *ConfigurationError) Settings() map[string]any {
	if len(e.settings) == 0 {
		return nil
	}

	out := make(map[string]any, len(e.settings))
	for k, v := range e.settings {
		out[k] = v
	}

	return out
}
