package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Options controls how the program takes over the terminal.
type Options struct {
	AltScreen bool
}

// Run starts the TUI application and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, fetcher Fetcher, logger *zap.Logger, opts Options) error {
	m := NewModel(ctx, fetcher, logger)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithMouseCellMotion()}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(m, programOpts...)

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	if final, ok := finalModel.(Model); ok {
		if msg := final.sel.Message(); msg != "" {
			fmt.Println(msg)
		}
	}

	return nil
}
