package hbswitch

import (
	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Configuration errors
	ErrMsgEmptyHelperName = "helper name cannot be empty"
	ErrMsgDuplicateNames  = "helper names must be distinct"
	ErrMsgNilComparator   = "comparator cannot be nil"

	// Registration errors
	ErrMsgAlreadyRegistered = "helper name already registered with host engine"

	// Render errors
	ErrMsgOrphanBlock = "helper used outside of an enclosing switch block"
)

// Error code constants for categorization
const (
	ErrCodeConfig   = "HBSWITCH_CONFIG"
	ErrCodeRegistry = "HBSWITCH_REGISTRY"
	ErrCodeRender   = "HBSWITCH_RENDER"
)

// Metadata keys attached to errors
const (
	MetaKeyHelper = "helper"
	MetaKeySwitch = "switch_helper"
	MetaKeyNames  = "helper_names"
)

// NewConfigError creates a configuration error for an invalid option value.
func NewConfigError(msg string, detail string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg).
		WithMetadata(MetaKeyNames, detail)
}

// NewAlreadyRegisteredError creates an error for a helper name collision
// with the host engine's global registry.
func NewAlreadyRegisteredError(helperName string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgAlreadyRegistered).
		WithMetadata(MetaKeyHelper, helperName)
}

// NewOrphanBlockError creates an error for a case or default block used
// outside of an enclosing switch block.
func NewOrphanBlockError(helperName, switchName string) error {
	return cuserr.NewValidationError(ErrCodeRender, ErrMsgOrphanBlock).
		WithMetadata(MetaKeyHelper, helperName).
		WithMetadata(MetaKeySwitch, switchName)
}
