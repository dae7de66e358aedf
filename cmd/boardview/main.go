package main

import (
	"fmt"
	"os"

	"github.com/benbeisheim/boardview-backend/internal/config"
	"github.com/benbeisheim/boardview-backend/internal/model"
	"github.com/benbeisheim/boardview-backend/internal/term"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// boardview draws a record in the terminal. The record comes from the first
// argument, else INITIAL_RECORD. Press r to switch to the second built-in
// position, click a square to inspect it, Esc to quit.
func main() {
	cfg, err := config.Setup(config.Path())
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	// The terminal belongs to tcell, so only errors go to stderr
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	zl, err := zcfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	log := zl.Sugar()
	defer log.Sync()

	record := cfg.InitialRecord
	if len(os.Args) > 1 {
		record = os.Args[1]
	}

	theme, err := term.ThemeByName(cfg.Theme)
	if err != nil {
		log.Fatalw("unknown theme", "theme", cfg.Theme, "error", err)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatalw("failed to create screen", "error", err)
	}
	if err := s.Init(); err != nil {
		log.Fatalw("failed to initialize screen", "error", err)
	}

	decoder := model.NewDecoder(log, cfg.StrictPlacement)
	viewer, err := term.NewViewer(s, theme, decoder, log, []string{record, model.SecondRecord})
	if err != nil {
		s.Fini()
		log.Fatalw("failed to load record", "record", record, "error", err)
	}
	viewer.Run()
	s.Fini()
}
