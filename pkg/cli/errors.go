package cli

import "fmt"

// ConfigError wraps a configuration loading failure with the environment
// that was being loaded, so "gantry run -e prod" failures name prod.
type ConfigError struct {
	Env string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("loading %q configuration: %v", e.Env, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewConfigError wraps err as a ConfigError for the given environment.
func NewConfigError(env string, err error) *ConfigError {
	return &ConfigError{Env: env, Err: err}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}
