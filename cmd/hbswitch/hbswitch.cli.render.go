package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sync"

	"github.com/aymerick/raymond"

	"github.com/itsatony/go-hbswitch"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath string
	dataJSON     string
	dataFilePath string
	outputPath   string
	quiet        bool
	noEscape     bool
}

// The host engine keeps one global helper registry per process, so the
// helpers are registered once no matter how often run() is invoked.
var (
	registerOnce sync.Once
	registerErr  error
)

func ensureHelpers() error {
	registerOnce.Do(func() {
		registerErr = hbswitch.Register()
	})
	return registerErr
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	if err := ensureHelpers(); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRegisterFailed, err)
		return ExitCodeError
	}

	// Read template
	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	// Parse data
	data, err := loadData(cfg.dataJSON, cfg.dataFilePath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidData, err)
		return ExitCodeInputError
	}

	if cfg.noEscape {
		data = safeStrings(data)
	}

	// Parse and render through the host engine
	tpl, err := raymond.Parse(string(templateSource))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgParseFailed, err)
		return ExitCodeError
	}

	result, err := tpl.Exec(data)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
		return ExitCodeError
	}

	// Write output
	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.dataJSON, FlagData, "", "")
	fs.StringVar(&cfg.dataJSON, FlagDataShort, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFile, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFileShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.BoolVar(&cfg.quiet, FlagQuiet, false, "")
	fs.BoolVar(&cfg.quiet, FlagQuietShort, false, "")
	fs.BoolVar(&cfg.noEscape, FlagNoEscape, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	return cfg, nil
}

// safeStrings marks all top-level string values as safe so they render
// without HTML escaping, for non-HTML contexts like plain text output.
func safeStrings(data map[string]interface{}) map[string]interface{} {
	vals := make(map[string]interface{}, len(data))
	for k, v := range data {
		if s, ok := v.(string); ok {
			vals[k] = raymond.SafeString(s)
		} else {
			vals[k] = v
		}
	}
	return vals
}
