// Package hbswitch provides switch/case/default block helpers for the
// raymond Handlebars engine.
//
// The helpers bring a first-match dispatch block to Handlebars templates:
//
//	{{#switch access}}
//	    {{#case "admin"}}Admin{{/case}}
//	    {{#default}}User{{/default}}
//	{{/switch}}
//
// With {"access": "admin"} the template renders "Admin"; with any other
// value it renders "User".
//
// # Basic Usage
//
// Register the helpers once, then render templates as usual:
//
//	hbswitch.MustRegister()
//
//	out, err := raymond.Render(tpl, map[string]interface{}{"access": "admin"})
//
// # Semantics
//
// The switch block resolves its parameter against the current rendering
// context and evaluates its nested blocks in source order. The first case
// block with a label equal to that value renders its body and stops
// further matching; duplicate labels never render twice.
//
// The host engine calls helpers with a fixed argument list, so a case
// block takes exactly one positional label. Additional labels are passed
// as hash arguments, whose key names carry no meaning, and a label that
// resolves to a slice or array matches any of its elements:
//
//	{{#case "page1" or="page2"}}page 1 or 2{{/case}}
//	{{#case knownStates}}known{{/case}}
//
// A default block renders only when no case has matched. Because blocks
// are evaluated in source position, the default block should be placed
// after all case blocks. Switch blocks nest freely; each switch tracks its
// match state in its own private data frame.
//
// Using {{#case}} or {{#default}} outside of a switch block is a render
// error, as is a {{#switch}} or {{#case}} block without its value
// parameter (the host engine enforces helper arity). Errors are reported
// through the host engine's render error return.
//
// # Configuration
//
// Customize the helpers with functional options:
//
//	helpers, err := hbswitch.New(
//	    hbswitch.WithSwitchName("select"),
//	    hbswitch.WithComparator(looseEqual),
//	    hbswitch.WithLogger(logger),
//	)
//	if err != nil { ... }
//	if err := helpers.Register(); err != nil { ... }
//
// The host engine keeps a single global helper registry per process, so a
// helper name can only be registered once. Register returns an error on
// collisions, including collisions with the host's built-in helpers,
// instead of panicking.
package hbswitch

import (
	"sync"

	"github.com/aymerick/raymond"
	"go.uber.org/zap"
)

// Helpers is a configured bundle of the switch, case and default block
// helpers. Create one with New and hand it to the host engine with
// Register, or via Map for manual registration.
type Helpers struct {
	config *helperConfig
	logger *zap.Logger
}

// registeredNames tracks the helper names this package has handed to the
// host engine's global registry, so repeated Register calls fail fast
// without touching the host.
var (
	registryMu      sync.Mutex
	registeredNames = make(map[string]bool)
)

// New creates a new Helpers bundle with the given options.
func New(opts ...Option) (*Helpers, error) {
	config := defaultHelperConfig()
	for _, opt := range opts {
		opt(config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Debug(LogMsgHelpersCreated,
		zap.String(LogFieldSwitchName, config.switchName),
		zap.String(LogFieldCaseName, config.caseName),
		zap.String(LogFieldDefaultName, config.defaultName),
	)

	return &Helpers{
		config: config,
		logger: logger,
	}, nil
}

// MustNew creates a new Helpers bundle and panics if there's an error.
func MustNew(opts ...Option) *Helpers {
	helpers, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return helpers
}

// Register adds the three helpers to the host engine's global registry.
// Returns an error if any of the configured names is already taken, by a
// previous Register call, by the host's built-in helpers, or by a helper
// registered with the host directly. Helpers registered before the
// colliding name stay registered with the host.
func (h *Helpers) Register() error {
	registryMu.Lock()
	defer registryMu.Unlock()

	for _, name := range h.HelperNames() {
		if registeredNames[name] {
			return NewAlreadyRegisteredError(name)
		}
	}

	callbacks := h.Map()
	for _, name := range h.HelperNames() {
		if err := registerHostHelper(name, callbacks[name]); err != nil {
			return err
		}
		registeredNames[name] = true
	}

	h.logger.Debug(LogMsgHelpersRegistered,
		zap.String(LogFieldSwitchName, h.config.switchName),
		zap.String(LogFieldCaseName, h.config.caseName),
		zap.String(LogFieldDefaultName, h.config.defaultName),
	)
	return nil
}

// registerHostHelper hands one helper to the host registry. The host
// panics on duplicate names; the recover converts that into an error.
func registerHostHelper(name string, fn interface{}) (err error) {
	defer func() {
		if recover() != nil {
			err = NewAlreadyRegisteredError(name)
		}
	}()
	raymond.RegisterHelper(name, fn)
	return nil
}

// MustRegister adds the helpers and panics if registration fails.
func (h *Helpers) MustRegister() {
	if err := h.Register(); err != nil {
		panic(err)
	}
}

// HelperNames returns the configured switch, case and default helper names,
// in that order.
func (h *Helpers) HelperNames() []string {
	return []string{h.config.switchName, h.config.caseName, h.config.defaultName}
}

// Map returns the helper callbacks keyed by their configured names, in the
// shape raymond.RegisterHelpers expects. Use it to register the helpers on
// the host engine yourself instead of calling Register.
func (h *Helpers) Map() map[string]interface{} {
	return map[string]interface{}{
		h.config.switchName:  h.switchHelper,
		h.config.caseName:    h.caseHelper,
		h.config.defaultName: h.defaultHelper,
	}
}

// Register adds switch/case/default helpers with default configuration to
// the host engine's global registry.
func Register() error {
	helpers, err := New()
	if err != nil {
		return err
	}
	return helpers.Register()
}

// MustRegister registers the default helpers and panics on error.
func MustRegister() {
	if err := Register(); err != nil {
		panic(err)
	}
}
