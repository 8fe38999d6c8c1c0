package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/konradsz/igrep/internal/config"
	"github.com/konradsz/igrep/internal/domain"
	"github.com/konradsz/igrep/internal/editor"
	"github.com/konradsz/igrep/internal/ui"
)

// stringList collects repeated flag values
type stringList []string

func (s *stringList) String() string { return fmt.Sprint([]string(*s)) }

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func main() {
	var (
		editorName    string
		editorCommand string
		contextRadius int
		ignoreCase    bool
		smartCase     bool
		wordRegexp    bool
		hidden        bool
		follow        bool
		globs         stringList
		types         stringList
		typesNot      stringList
	)

	flag.StringVar(&editorName, "editor", "", "Editor to open matches with")
	flag.StringVar(&editorCommand, "editor-command", "", "Custom editor command with {file_name} and {line_number} placeholders")
	flag.IntVar(&contextRadius, "context", -1, "Context viewer lines above and below the match")
	flag.BoolVar(&ignoreCase, "i", false, "Case insensitive search")
	flag.BoolVar(&ignoreCase, "ignore-case", false, "Case insensitive search")
	flag.BoolVar(&smartCase, "S", false, "Smart case search")
	flag.BoolVar(&smartCase, "smart-case", false, "Smart case search")
	flag.BoolVar(&wordRegexp, "w", false, "Only show matches surrounded by word boundaries")
	flag.BoolVar(&wordRegexp, "word-regexp", false, "Only show matches surrounded by word boundaries")
	flag.BoolVar(&hidden, "hidden", false, "Search hidden files and directories")
	flag.BoolVar(&follow, "L", false, "Follow symbolic links")
	flag.BoolVar(&follow, "follow", false, "Follow symbolic links")
	flag.Var(&globs, "g", "Include or exclude files matching the glob (repeatable)")
	flag.Var(&globs, "glob", "Include or exclude files matching the glob (repeatable)")
	flag.Var(&types, "t", "Only search files matching the type (repeatable)")
	flag.Var(&types, "type", "Only search files matching the type (repeatable)")
	flag.Var(&typesNot, "T", "Do not search files matching the type (repeatable)")
	flag.Var(&typesNot, "type-not", "Do not search files matching the type (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] PATTERN [PATH ...]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	pattern := flag.Arg(0)
	paths := flag.Args()[1:]
	if len(paths) == 0 {
		paths = []string{"."}
	}

	// Set up logging
	logFile, err := os.OpenFile("igrep.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "igrep: %v\n", err)
		os.Exit(1)
	}
	if contextRadius >= 0 {
		cfg.ContextRadius = contextRadius
	}

	// flags beat config file values
	if editorName == "" {
		editorName = cfg.Editor
	}
	if editorCommand == "" {
		editorCommand = cfg.EditorCommand
	}

	// resolve the editor before the UI starts so a bad configuration
	// fails fast instead of on the first Enter
	editorCmd, err := editor.NewCommand(editorCommand, editorName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "igrep: %v\n", err)
		os.Exit(1)
	}

	opts := domain.SearchOptions{
		Pattern:      pattern,
		Paths:        paths,
		Globs:        globs,
		Types:        types,
		TypesNot:     typesNot,
		IgnoreCase:   ignoreCase || cfg.Search.IgnoreCase,
		SmartCase:    smartCase || cfg.Search.SmartCase,
		WordRegexp:   wordRegexp,
		SearchHidden: hidden || cfg.Search.SearchHidden,
		FollowLinks:  follow || cfg.Search.FollowLinks,
	}

	model := ui.NewModel(cfg, opts, editorCmd)

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "igrep: %v\n", err)
		os.Exit(1)
	}
}
