package main

import (
	"fmt"
	"io"
)

func runHelp(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeSuccess
	}

	switch args[0] {
	case CmdNameRender:
		fmt.Fprintln(stdout, HelpRenderUsage)
		return ExitCodeSuccess
	case CmdNameVersion:
		fmt.Fprintln(stdout, HelpVersionUsage)
		return ExitCodeSuccess
	case CmdNameHelp:
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeSuccess
	default:
		fmt.Fprintf(stdout, FmtErrorWithDetail, ErrMsgUnknownCommand, args[0])
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeUsageError
	}
}
