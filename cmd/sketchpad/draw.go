package main

import (
	"flag"

	"github.com/example/sketchpad/internal/appstate"
)

// drawCmd opens the drawing window. It is the default command.
type drawCmd struct {
	*root
	fs *flag.FlagSet
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: d}
	}
	return d, nil
}

func (d *drawCmd) Run() error {
	state := appstate.New(
		appstate.WithOutput(d.output),
		appstate.WithFontPath(d.fontPath),
		appstate.WithTheme(d.activeTheme),
		appstate.WithNotifier(d.notifier),
		appstate.WithCanvasSize(d.canvasW, d.canvasH),
	)
	state.Run()
	return nil
}
