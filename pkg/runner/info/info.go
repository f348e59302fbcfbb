package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/party/pkg/app"
	"tableflip.dev/party/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("PARTY_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "PARTY_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "PARTY_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	ai := n.Config.OpenAI()
	if ai.APIKey != "" {
		_, _ = fmt.Fprintf(out, "Generation: openai (%s)\n", ai.Model)
	} else {
		_, _ = fmt.Fprintln(out, "Generation: built-in checklist (no openai.apiKey)")
	}

	if n.Service == nil {
		return errors.New("failed to create persistence object")
	}

	names, err := n.Service.Plans(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Plans:\n")
	for _, name := range names {
		_, _ = fmt.Fprintf(out, "  %s\n", name)
	}
	if len(names) == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no plans")
	}
	return nil
}
