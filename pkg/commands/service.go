package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/party/pkg/app"
	"tableflip.dev/party/pkg/log"
	"tableflip.dev/party/pkg/store"
	"tableflip.dev/party/pkg/task"
	"tableflip.dev/party/pkg/zone"
)

// newService loads config and persistence and wires the generator. With
// offline set, or without an OpenAI key, only the built-in checklist is used.
func newService(offline bool) (*app.Service, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	log.Configure(cfg.LogLevel())
	if verbose {
		log.SetLevel("debug")
	}

	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}

	gen := &task.Generator{}
	if !offline {
		ai := cfg.OpenAI()
		if c := task.NewOpenAI(ai.APIKey, ai.BaseURL, ai.Model); c != nil {
			gen.Completer = c
		} else {
			log.Debug().Msg("commands: no openai.apiKey configured")
		}
	}
	return &app.Service{Persistence: p, Generator: gen, Taxonomy: zone.Default()}, cfg, nil
}

func planCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	svc, _, err := newService(true)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names, err := svc.Plans(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func keyCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return planCompletions(nil, args, toComplete)
	}
	svc, _, err := newService(true)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	v, err := svc.View(context.Background(), args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	keys := make([]string, 0)
	for _, z := range v.Zones {
		for _, it := range z.Items {
			keys = append(keys, it.Key+"\t"+it.Task())
		}
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}
