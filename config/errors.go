package config

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable matches a ConfigError whose document could not be read
	ErrSourceUnavailable = errors.New("config source unavailable")

	// ErrMalformed matches a ConfigError whose document could not be parsed or validated
	ErrMalformed = errors.New("config malformed")
)

// ErrorKind classifies configuration load failures
type ErrorKind int

const (
	SourceUnavailable ErrorKind = iota
	Malformed
)

func (k ErrorKind) String() string {
	switch k {
	case SourceUnavailable:
		return "source unavailable"
	case Malformed:
		return "malformed"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ConfigError reports why a configuration document could not be loaded
type ConfigError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("config %s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a ConfigError against the kind sentinels
func (e *ConfigError) Is(target error) bool {
	switch target {
	case ErrSourceUnavailable:
		return e.Kind == SourceUnavailable
	case ErrMalformed:
		return e.Kind == Malformed
	}
	return false
}
