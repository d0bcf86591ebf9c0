package books

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Opener reveals a file in the desktop file manager.
type Opener interface {
	Reveal(ctx context.Context, path string) error
}

// CommandOpener runs the platform's file manager command.
type CommandOpener struct {
	GOOS string
	Run  func(ctx context.Context, name string, args ...string) error
}

// NewCommandOpener returns an opener for the running platform.
func NewCommandOpener() *CommandOpener {
	return &CommandOpener{
		GOOS: runtime.GOOS,
		Run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

// Command returns the program and arguments that reveal path.
// macOS selects the file in Finder, Windows selects it in Explorer, and other systems
// open the containing directory.
func (o *CommandOpener) Command(path string) (string, []string) {
	switch o.GOOS {
	case "darwin":
		return "open", []string{"-R", path}
	case "windows":
		return "explorer", []string{"/select," + path}
	default:
		return "xdg-open", []string{filepath.Dir(path)}
	}
}

// Reveal runs the platform command for path.
func (o *CommandOpener) Reveal(ctx context.Context, path string) error {
	name, args := o.Command(path)
	if err := o.Run(ctx, name, args...); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}
