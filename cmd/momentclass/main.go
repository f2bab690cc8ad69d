package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"momentclass/internal/config"
	"momentclass/internal/prompt"
	"momentclass/internal/tui"
)

var version = "dev"

func main() {
	interactive := flag.Bool("i", false, "edit the moment text interactively before rendering")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("momentclass " + version)
		return
	}

	text := prompt.DemoText
	if cfg, err := config.Load(); err == nil && cfg != nil && cfg.DefaultText != "" {
		text = cfg.DefaultText
	}
	if args := flag.Args(); len(args) > 0 {
		text = strings.Join(args, " ")
	}

	if *interactive {
		app := tui.NewApp(text)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		text = app.Text()
		if text == "" {
			// Cancelled.
			return
		}
	}

	out, err := prompt.Render(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(out)
}
