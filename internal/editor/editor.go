package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// Environment variables consulted when no editor is chosen explicitly,
// in order of precedence.
const (
	EnvEditorCommand = "IGREP_EDITOR_COMMAND"
	EnvIgrepEditor   = "IGREP_EDITOR"
	EnvVisual        = "VISUAL"
	EnvEditor        = "EDITOR"
)

// Placeholders a custom editor command must contain.
const (
	FileNamePlaceholder   = "{file_name}"
	LineNumberPlaceholder = "{line_number}"
)

// builtin describes one supported editor: the program to invoke, how it
// addresses a file at a line, and whether it detaches from the terminal
// (GUI editors return immediately and need no terminal handover).
type builtin struct {
	program  string
	argStyle argStyle
	detached bool
}

type argStyle int

const (
	// plusLine: program +N file
	plusLine argStyle = iota
	// gotoFlag: program -g file:N
	gotoFlag
	// colonSuffix: program file:N
	colonSuffix
	// lineFlag: program --line N file
	lineFlag
	// nwPlusLine: program -nw +N file
	nwPlusLine
)

var builtins = map[string]builtin{
	"vim":           {program: "vim", argStyle: plusLine},
	"neovim":        {program: "nvim", argStyle: plusLine},
	"nvim":          {program: "nvim", argStyle: plusLine},
	"nano":          {program: "nano", argStyle: plusLine},
	"micro":         {program: "micro", argStyle: plusLine},
	"less":          {program: "less", argStyle: plusLine},
	"code":          {program: "code", argStyle: gotoFlag, detached: true},
	"vscode":        {program: "code", argStyle: gotoFlag, detached: true},
	"code-insiders": {program: "code-insiders", argStyle: gotoFlag, detached: true},
	"emacs":         {program: "emacs", argStyle: nwPlusLine},
	"emacsclient":   {program: "emacsclient", argStyle: nwPlusLine},
	"hx":            {program: "hx", argStyle: colonSuffix},
	"helix":         {program: "helix", argStyle: colonSuffix},
	"subl":          {program: "subl", argStyle: colonSuffix, detached: true},
	"sublime-text":  {program: "subl", argStyle: colonSuffix, detached: true},
	"intellij":      {program: "idea", argStyle: lineFlag, detached: true},
	"goland":        {program: "goland", argStyle: lineFlag, detached: true},
	"pycharm":       {program: "pycharm", argStyle: lineFlag, detached: true},
}

// DefaultEditor is used when nothing else names one.
const DefaultEditor = "vim"

// Command resolves to a concrete invocation for a given file and line.
// Resolution happens once at startup so a misconfigured editor fails
// before the UI ever comes up.
type Command struct {
	name     string
	program  string
	argStyle argStyle
	detached bool

	// custom command, split into program + arg templates
	custom []string
}

// Spec is a ready-to-spawn invocation.
type Spec struct {
	Program  string
	Args     []string
	Detached bool
}

// NewCommand resolves the editor to use. A non-empty custom command wins
// outright; otherwise the explicit name, then $IGREP_EDITOR, $VISUAL and
// $EDITOR are tried, falling back to vim. Environment values may be full
// paths; only the basename has to name a supported editor.
func NewCommand(custom, explicit string) (*Command, error) {
	if custom == "" {
		custom = os.Getenv(EnvEditorCommand)
	}
	if custom != "" {
		return parseCustom(custom)
	}

	name := explicit
	source := "--editor"
	if name == "" {
		for _, env := range []string{EnvIgrepEditor, EnvVisual, EnvEditor} {
			if value := os.Getenv(env); value != "" {
				name = filepath.Base(value)
				source = "$" + env
				break
			}
		}
	}
	if name == "" {
		name = DefaultEditor
	}

	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unsupported editor %q (from %s), supported: %s",
			name, source, strings.Join(supportedNames(), ", "))
	}
	return &Command{name: name, program: b.program, argStyle: b.argStyle, detached: b.detached}, nil
}

func parseCustom(command string) (*Command, error) {
	parts, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("invalid editor command %q: %w", command, err)
	}
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid editor command %q: expected a program and its arguments", command)
	}
	if !strings.Contains(command, FileNamePlaceholder) {
		return nil, fmt.Errorf("invalid editor command %q: missing %s", command, FileNamePlaceholder)
	}
	if !strings.Contains(command, LineNumberPlaceholder) {
		return nil, fmt.Errorf("invalid editor command %q: missing %s", command, LineNumberPlaceholder)
	}
	return &Command{name: parts[0], custom: parts}, nil
}

// Name returns the resolved editor (or custom program) name.
func (c *Command) Name() string { return c.name }

// Spec builds the invocation for one match.
func (c *Command) Spec(fileName string, lineNumber int) Spec {
	if c.custom != nil {
		args := make([]string, 0, len(c.custom)-1)
		for _, a := range c.custom[1:] {
			a = strings.ReplaceAll(a, FileNamePlaceholder, fileName)
			a = strings.ReplaceAll(a, LineNumberPlaceholder, strconv.Itoa(lineNumber))
			args = append(args, a)
		}
		return Spec{Program: c.custom[0], Args: args}
	}

	line := strconv.Itoa(lineNumber)
	var args []string
	switch c.argStyle {
	case plusLine:
		args = []string{"+" + line, fileName}
	case gotoFlag:
		args = []string{"-g", fileName + ":" + line}
	case colonSuffix:
		args = []string{fileName + ":" + line}
	case lineFlag:
		args = []string{"--line", line, fileName}
	case nwPlusLine:
		args = []string{"-nw", "+" + line, fileName}
	}
	return Spec{Program: c.program, Args: args, Detached: c.detached}
}

// Exec builds an exec.Cmd for the invocation, resolving the program on
// PATH first so a missing binary is reported before the terminal is
// handed over.
func (c *Command) Exec(fileName string, lineNumber int) (*exec.Cmd, Spec, error) {
	spec := c.Spec(fileName, lineNumber)
	path, err := exec.LookPath(spec.Program)
	if err != nil {
		return nil, spec, fmt.Errorf("editor %s: %w", spec.Program, err)
	}
	return exec.Command(path, spec.Args...), spec, nil
}

func supportedNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
