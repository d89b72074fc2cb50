package hbswitch

import (
	"strings"

	"go.uber.org/zap"
)

// Option is a functional option for configuring a Helpers bundle.
type Option func(*helperConfig)

// helperConfig holds the internal configuration for a Helpers bundle.
type helperConfig struct {
	switchName  string
	caseName    string
	defaultName string
	compare     Comparator
	logger      *zap.Logger
}

// defaultHelperConfig returns the default helper configuration.
func defaultHelperConfig() *helperConfig {
	return &helperConfig{
		switchName:  DefaultSwitchName,
		caseName:    DefaultCaseName,
		defaultName: DefaultDefaultName,
		compare:     DefaultComparator,
		logger:      nil,
	}
}

// validate checks the configuration for empty or colliding helper names
// and a missing comparator.
func (c *helperConfig) validate() error {
	names := []string{c.switchName, c.caseName, c.defaultName}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return NewConfigError(ErrMsgEmptyHelperName, strings.Join(names, ","))
		}
		if seen[name] {
			return NewConfigError(ErrMsgDuplicateNames, strings.Join(names, ","))
		}
		seen[name] = true
	}
	if c.compare == nil {
		return NewConfigError(ErrMsgNilComparator, strings.Join(names, ","))
	}
	return nil
}

// WithSwitchName sets the name the switch block helper is registered under.
// Default: "switch"
func WithSwitchName(name string) Option {
	return func(c *helperConfig) {
		c.switchName = name
	}
}

// WithCaseName sets the name the case block helper is registered under.
// Default: "case"
func WithCaseName(name string) Option {
	return func(c *helperConfig) {
		c.caseName = name
	}
}

// WithDefaultName sets the name the default block helper is registered under.
// Default: "default"
func WithDefaultName(name string) Option {
	return func(c *helperConfig) {
		c.defaultName = name
	}
}

// WithComparator replaces the equality test used to match case labels
// against the switch value.
// Default: DefaultComparator
func WithComparator(compare Comparator) Option {
	return func(c *helperConfig) {
		c.compare = compare
	}
}

// WithLogger sets the logger for the helpers.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *helperConfig) {
		c.logger = logger
	}
}
