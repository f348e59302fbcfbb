// Package export provides the CLI runner that writes the plain-text checklist
// report.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"tableflip.dev/party/pkg/app"
)

type Export struct {
	Service *app.Service
	Name    string
	// Dir receives the report file. When Stdout is set the report is printed
	// instead.
	Dir    string
	Stdout bool
	Out    io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	exp, err := n.Service.Export(ctx, n.Name)
	if err != nil {
		return err
	}
	if n.Stdout {
		_, err := fmt.Fprint(out, exp.Content)
		return err
	}

	dir := n.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: create %s: %w", dir, err)
	}
	if filepath.Base(exp.Filename) != exp.Filename {
		return fmt.Errorf("export: invalid file name %q", exp.Filename)
	}
	path := filepath.Join(dir, exp.Filename)
	if err := os.WriteFile(path, []byte(exp.Content), 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	_, _ = fmt.Fprintf(out, "wrote %s\n", path)
	return nil
}
