package hbswitch

// Version is the library version, also reported by the hbswitch CLI.
const Version = "1.0.0"

// Default helper names registered with the host engine
const (
	DefaultSwitchName  = "switch"
	DefaultCaseName    = "case"
	DefaultDefaultName = "default"
)

// Private data frame keys carrying switch state through the host engine's
// data frame. They are visible to templates inside a switch block as
// @hbswitch_value and @hbswitch_matched.
const (
	DataKeyValue   = "hbswitch_value"
	DataKeyMatched = "hbswitch_matched"
)

// Log messages - ALL log output must use constants (NO MAGIC STRINGS)
const (
	LogMsgHelpersCreated    = "hbswitch helpers created"
	LogMsgHelpersRegistered = "hbswitch helpers registered"
	LogMsgSwitchOpened      = "switch block opened"
	LogMsgCaseMatched       = "case label matched"
	LogMsgCaseSkipped       = "case block skipped, switch already matched"
	LogMsgDefaultRendered   = "default block rendered"
	LogMsgDefaultSkipped    = "default block skipped, switch already matched"
)

// Log field names
const (
	LogFieldHelper      = "helper"
	LogFieldSwitchName  = "switch_name"
	LogFieldCaseName    = "case_name"
	LogFieldDefaultName = "default_name"
	LogFieldValue       = "value"
	LogFieldLabel       = "label"
)
