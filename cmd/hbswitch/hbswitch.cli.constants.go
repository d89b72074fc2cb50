package main

import "io/fs"

// Command names
const (
	CmdNameRender  = "render"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagTemplate = "template"
	FlagData     = "data"
	FlagDataFile = "data-file"
	FlagOutput   = "output"
	FlagQuiet    = "quiet"
	FlagNoEscape = "no-escape"
	FlagFormat   = "format"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagOutputShort   = "o"
	FlagQuietShort    = "q"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Data file extensions parsed as YAML instead of JSON
const (
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// FilePermissions used for output files
const FilePermissions fs.FileMode = 0o644

// Error messages - ALL must be constants
const (
	ErrMsgMissingTemplate   = "template source required"
	ErrMsgInvalidData       = "invalid data"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgParseFailed       = "template parsing failed"
	ErrMsgRenderFailed      = "template rendering failed"
	ErrMsgRegisterFailed    = "helper registration failed"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgUnknownCommand    = "unknown command"
)

// Output format strings
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
	FmtVersionText     = "hbswitch %s (%s)\n"
)

// Help text
const (
	HelpMainUsage = `hbswitch - switch/case/default Handlebars helpers CLI

Usage:
    hbswitch <command> [options]

Commands:
    render      Render a Handlebars template with the switch helpers registered
    version     Show version information
    help        Show help for a command

Use "hbswitch help <command>" for more information about a command.`

	HelpRenderUsage = `Render a Handlebars template with the switch helpers registered

Usage:
    hbswitch render [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -d, --data <json>       JSON data string
    -f, --data-file <file>  Data file (.json, .yaml or .yml)
    -o, --output <file>     Output file (default: stdout)
    -q, --quiet             Suppress non-error output
    --no-escape             Treat string values as safe (no HTML escaping)

Examples:
    hbswitch render -t page.hbs -d '{"access": "admin"}'
    hbswitch render -t page.hbs -f data.yaml
    cat page.hbs | hbswitch render -t - -d '{"access": "admin"}'`

	HelpVersionUsage = `Show version information

Usage:
    hbswitch version [options]

Options:
    -F, --format <format>   Output format: text or json (default: text)`
)
