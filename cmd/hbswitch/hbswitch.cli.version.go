package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"runtime"

	"github.com/itsatony/go-hbswitch"
)

// versionInfo describes the CLI build
type versionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

func runVersion(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(CmdNameVersion, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var format string
	fs.StringVar(&format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgUnknownCommand, err)
		return ExitCodeUsageError
	}

	info := versionInfo{
		Version:   hbswitch.Version,
		GoVersion: runtime.Version(),
	}

	switch format {
	case OutputFormatText:
		fmt.Fprintf(stdout, FmtVersionText, info.Version, info.GoVersion)
		return ExitCodeSuccess
	case OutputFormatJSON:
		encoded, err := json.Marshal(info)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
			return ExitCodeError
		}
		stdout.Write(encoded)
		fmt.Fprint(stdout, FmtNewline)
		return ExitCodeSuccess
	default:
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgInvalidFormat, format)
		return ExitCodeUsageError
	}
}
