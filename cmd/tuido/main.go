package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tuido"
	"github.com/iw2rmb/tuido/app"
	"github.com/iw2rmb/tuido/todo"
)

func main() {
	dataPath := flag.String("data", "", "path to the todo file (default: per-user config dir)")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("tuido " + tuido.VersionTag())
		return
	}

	path := *dataPath
	if path == "" {
		p, err := todo.DefaultPath()
		if err != nil {
			fatal(err)
		}
		path = p
	}

	if os.Getenv("TUIDO_DEBUG") != "" {
		f, err := tea.LogToFile("tuido-debug.log", "tuido")
		if err != nil {
			fatal(err)
		}
		defer f.Close()
	}

	store := todo.NewStore(path)
	items, err := store.Load()
	if err != nil {
		fatal(err)
	}

	p := tea.NewProgram(app.New(items, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	_, _ = os.Stderr.WriteString(err.Error() + "\n")
	os.Exit(1)
}
