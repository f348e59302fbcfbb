package app

import (
	"context"
	"errors"

	"tableflip.dev/party/pkg/log"
	"tableflip.dev/party/pkg/plan"
	"tableflip.dev/party/pkg/task"
)

// ErrSuperseded is returned to a Generate call whose result was discarded
// because a newer generation for the same plan was started.
var ErrSuperseded = errors.New("app: generation superseded")

// ticket identifies one generation request; only the latest ticket per plan
// may commit.
type ticket struct {
	cancel context.CancelFunc
}

// Generate produces a fresh checklist for the named plan and installs it.
// Starting a generation cancels any in-flight one for the same plan; the
// older call then returns ErrSuperseded and its items are dropped.
func (s *Service) Generate(ctx context.Context, name string) (*plan.Plan, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	n, err := plan.CleanName(name)
	if err != nil {
		return nil, err
	}
	p, err := s.load(ctx, n)
	if err != nil {
		return nil, err
	}

	gctx, cancel := context.WithCancel(ctx)
	defer cancel()
	t := s.begin(n, cancel)

	items := s.generator().Generate(gctx, p.Params)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[n] != t {
		log.Debug().Str("plan", n).Int("items", len(items)).Msg("app: discarding superseded generation")
		return nil, ErrSuperseded
	}
	delete(s.inflight, n)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Reload so toggles made while generating are carried forward too.
	p, err = s.load(ctx, n)
	if err != nil {
		return nil, err
	}
	p.Replace(items, s.now())
	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	log.Info().Str("plan", n).Str("generation", p.Generation).Int("items", len(items)).Msg("app: checklist generated")
	return p, nil
}

// Regenerate is Generate with explicit parameters; the plan's stored
// parameters are replaced first.
func (s *Service) Regenerate(ctx context.Context, name string, params task.Params) (*plan.Plan, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	n, err := plan.CleanName(name)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	p, err := s.load(ctx, n)
	if err == nil {
		p.Params = params
		p.Updated = s.now()
		err = s.save(ctx, p)
	}
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.Generate(ctx, n)
}

func (s *Service) begin(name string, cancel context.CancelFunc) *ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight == nil {
		s.inflight = make(map[string]*ticket)
	}
	if prev, ok := s.inflight[name]; ok {
		log.Debug().Str("plan", name).Msg("app: superseding in-flight generation")
		prev.cancel()
	}
	t := &ticket{cancel: cancel}
	s.inflight[name] = t
	return t
}
