package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentstation/bookshelf"
)

type runOptions struct {
	in        io.Reader
	out       io.Writer
	theme     Theme
	altScreen bool
}

// Option configures Run.
type Option func(*runOptions)

// WithInput reads key presses from r instead of the terminal.
func WithInput(r io.Reader) Option {
	return func(o *runOptions) { o.in = r }
}

// WithOutput renders to w instead of the terminal.
func WithOutput(w io.Writer) Option {
	return func(o *runOptions) { o.out = w }
}

// WithTheme overrides the menu styles.
func WithTheme(t Theme) Option {
	return func(o *runOptions) { o.theme = t }
}

// WithAltScreen runs the menu in the terminal's alternate screen buffer.
func WithAltScreen() Option {
	return func(o *runOptions) { o.altScreen = true }
}

// Run shows the menu until the user exits or ctx is cancelled.
func Run(ctx context.Context, lib bookshelf.Library, opts ...Option) error {
	o := runOptions{theme: DefaultTheme()}
	for _, opt := range opts {
		opt(&o)
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if o.in != nil {
		progOpts = append(progOpts, tea.WithInput(o.in))
	}
	if o.out != nil {
		progOpts = append(progOpts, tea.WithOutput(o.out))
	}
	if o.altScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	_, err := tea.NewProgram(newModel(lib, o.theme), progOpts...).Run()
	return err
}
