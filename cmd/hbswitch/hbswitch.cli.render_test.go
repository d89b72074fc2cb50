package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsatony/go-hbswitch"
)

const accessTpl = `{{#switch access}}{{#case "admin"}}Admin{{/case}}{{#default}}User{{/default}}{{/switch}}`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args []string, stdin string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunRender_InlineData(t *testing.T) {
	tplPath := writeTempFile(t, "access.hbs", accessTpl)

	code, stdout, stderr := runCLI(t, []string{"render", "-t", tplPath, "-d", `{"access": "admin"}`}, "")
	assert.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Equal(t, "Admin", stdout)
}

func TestRunRender_DataFile(t *testing.T) {
	tplPath := writeTempFile(t, "access.hbs", accessTpl)

	t.Run("json file", func(t *testing.T) {
		dataPath := writeTempFile(t, "data.json", `{"access": "nobody"}`)

		code, stdout, _ := runCLI(t, []string{"render", "-t", tplPath, "-f", dataPath}, "")
		assert.Equal(t, ExitCodeSuccess, code)
		assert.Equal(t, "User", stdout)
	})

	t.Run("yaml file", func(t *testing.T) {
		dataPath := writeTempFile(t, "data.yaml", "access: admin\n")

		code, stdout, _ := runCLI(t, []string{"render", "-t", tplPath, "-f", dataPath}, "")
		assert.Equal(t, ExitCodeSuccess, code)
		assert.Equal(t, "Admin", stdout)
	})

	t.Run("inline data overrides file", func(t *testing.T) {
		dataPath := writeTempFile(t, "data.yaml", "access: admin\n")

		code, stdout, _ := runCLI(t, []string{"render", "-t", tplPath, "-f", dataPath, "-d", `{"access": "x"}`}, "")
		assert.Equal(t, ExitCodeSuccess, code)
		assert.Equal(t, "User", stdout)
	})
}

func TestRunRender_StdinTemplate(t *testing.T) {
	code, stdout, _ := runCLI(t, []string{"render", "-t", "-", "-d", `{"access": "admin"}`}, accessTpl)
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, "Admin", stdout)
}

func TestRunRender_OutputFile(t *testing.T) {
	tplPath := writeTempFile(t, "access.hbs", accessTpl)
	outPath := filepath.Join(t.TempDir(), "out.txt")

	code, stdout, _ := runCLI(t, []string{"render", "-t", tplPath, "-d", `{"access": "admin"}`, "-o", outPath}, "")
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Empty(t, stdout)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Admin", string(content))
}

func TestRunRender_NoEscape(t *testing.T) {
	tplPath := writeTempFile(t, "msg.hbs", `{{msg}}`)

	t.Run("escaped by default", func(t *testing.T) {
		code, stdout, _ := runCLI(t, []string{"render", "-t", tplPath, "-d", `{"msg": "<b>hi</b>"}`}, "")
		assert.Equal(t, ExitCodeSuccess, code)
		assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;", stdout)
	})

	t.Run("unescaped with no-escape", func(t *testing.T) {
		code, stdout, _ := runCLI(t, []string{"render", "-t", tplPath, "-d", `{"msg": "<b>hi</b>"}`, "--no-escape"}, "")
		assert.Equal(t, ExitCodeSuccess, code)
		assert.Equal(t, "<b>hi</b>", stdout)
	})
}

func TestRunRender_Errors(t *testing.T) {
	t.Run("missing template flag", func(t *testing.T) {
		code, _, stderr := runCLI(t, []string{"render"}, "")
		assert.Equal(t, ExitCodeUsageError, code)
		assert.Contains(t, stderr, ErrMsgMissingTemplate)
	})

	t.Run("template file not found", func(t *testing.T) {
		code, _, stderr := runCLI(t, []string{"render", "-t", filepath.Join(t.TempDir(), "missing.hbs")}, "")
		assert.Equal(t, ExitCodeInputError, code)
		assert.Contains(t, stderr, ErrMsgReadFileFailed)
	})

	t.Run("invalid inline data", func(t *testing.T) {
		tplPath := writeTempFile(t, "access.hbs", accessTpl)

		code, _, stderr := runCLI(t, []string{"render", "-t", tplPath, "-d", `{not json`}, "")
		assert.Equal(t, ExitCodeInputError, code)
		assert.Contains(t, stderr, ErrMsgInvalidData)
	})

	t.Run("render error from orphan case block", func(t *testing.T) {
		tplPath := writeTempFile(t, "orphan.hbs", `{{#case "x"}}X{{/case}}`)

		code, _, stderr := runCLI(t, []string{"render", "-t", tplPath}, "")
		assert.Equal(t, ExitCodeError, code)
		assert.Contains(t, stderr, ErrMsgRenderFailed)
	})
}

func TestRunVersion(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		code, stdout, _ := runCLI(t, []string{"version"}, "")
		assert.Equal(t, ExitCodeSuccess, code)
		assert.Equal(t, fmt.Sprintf(FmtVersionText, hbswitch.Version, runtime.Version()), stdout)
	})

	t.Run("json", func(t *testing.T) {
		code, stdout, _ := runCLI(t, []string{"version", "-F", "json"}, "")
		assert.Equal(t, ExitCodeSuccess, code)
		assert.Contains(t, stdout, `"version"`)
		assert.Contains(t, stdout, `"go_version"`)
	})

	t.Run("invalid format", func(t *testing.T) {
		code, _, stderr := runCLI(t, []string{"version", "-F", "xml"}, "")
		assert.Equal(t, ExitCodeUsageError, code)
		assert.Contains(t, stderr, ErrMsgInvalidFormat)
	})
}

func TestRunHelp(t *testing.T) {
	t.Run("no args shows main usage", func(t *testing.T) {
		code, stdout, _ := runCLI(t, nil, "")
		assert.Equal(t, ExitCodeSuccess, code)
		assert.Contains(t, stdout, "Usage:")
	})

	t.Run("help render", func(t *testing.T) {
		code, stdout, _ := runCLI(t, []string{"help", "render"}, "")
		assert.Equal(t, ExitCodeSuccess, code)
		assert.Contains(t, stdout, CmdNameRender)
	})

	t.Run("unknown command", func(t *testing.T) {
		code, stdout, _ := runCLI(t, []string{"frobnicate"}, "")
		assert.Equal(t, ExitCodeUsageError, code)
		assert.Contains(t, stdout, ErrMsgUnknownCommand)
	})
}
