package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mjfried/streamdiff"
	"github.com/mjfried/streamdiff/ansi"
	"github.com/mjfried/streamdiff/internal/git"
	"github.com/mjfried/streamdiff/internal/ui"
)

func main() {
	before := flag.String("before", "", "previous version of the file to diff against")
	gitRef := flag.String("git", "", "diff against the file's version at this git ref (e.g. HEAD)")
	lang := flag.String("lang", "", "language id (default: detect from file extension)")
	theme := flag.String("theme", "", "chroma style name")
	stream := flag.Bool("stream", false, "treat the file as a partial, still-growing text")
	collapse := flag.Bool("collapse", false, "collapse long unchanged runs")
	padding := flag.Int("padding", 0, "context lines kept at collapse boundaries (default 3)")
	numbers := flag.Bool("n", true, "show line numbers")
	tui := flag.Bool("tui", false, "open the interactive viewer")
	copyOut := flag.Bool("copy", false, "copy the rendered output to the clipboard")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: streamdiff [flags] <file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	code, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := streamdiff.Options{
		Language:  *lang,
		Path:      path,
		Theme:     *theme,
		Streaming: *stream,
		Collapse:  *collapse,
		Padding:   *padding,
	}
	switch {
	case *before != "" && *gitRef != "":
		fmt.Fprintln(os.Stderr, "Error: -before and -git are mutually exclusive")
		os.Exit(2)
	case *before != "":
		prev, err := os.ReadFile(*before)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		prevStr := string(prev)
		opts.DiffWith = &prevStr
	case *gitRef != "":
		r := &git.Runner{Dir: filepath.Dir(path)}
		if !r.IsRepo() {
			fmt.Fprintf(os.Stderr, "Error: %s is not inside a git repository\n", path)
			os.Exit(1)
		}
		prev, err := r.ShowFile(*gitRef, filepath.Base(path))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.DiffWith = &prev
	}

	tc, err := streamdiff.Tokenize(string(code), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	renderOpts := ansi.Options{LineNumbers: *numbers}

	if *tui {
		p := tea.NewProgram(ui.NewViewer(tc, renderOpts), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	out := ansi.Render(tc, renderOpts)
	if *copyOut {
		if err := clipboard.WriteAll(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: copying to clipboard: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Print(out)
}
