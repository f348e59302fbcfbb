package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tableflip.dev/party/pkg/overlay"
	"tableflip.dev/party/pkg/plan"
	"tableflip.dev/party/pkg/store"
	"tableflip.dev/party/pkg/task"
	"tableflip.dev/party/pkg/zone"
)

// planPrefix namespaces plan blobs in persistence.
const planPrefix = "plans/"

var (
	// ErrNoPersistence is returned when the service has no backing store.
	ErrNoPersistence = errors.New("app: no persistence configured")
	// ErrUnknownKey is returned when an identity key is not in the plan's
	// merged view.
	ErrUnknownKey = errors.New("app: unknown item key")
	// ErrPlanNotFound is returned for plans that were never created.
	ErrPlanNotFound = errors.New("app: plan not found")
	// ErrPlanExists is returned by Create when the name is taken.
	ErrPlanExists = errors.New("app: plan already exists")
)

// Generator produces a checklist for a set of party parameters.
type Generator interface {
	Generate(ctx context.Context, p task.Params) []task.Item
}

// Service provides high-level operations on party plans.
// It wraps persistence, generation and the zone taxonomy so the CLI and the
// MCP server share logic.
type Service struct {
	Persistence store.Persistence
	Generator   Generator
	Taxonomy    *zone.Taxonomy
	Now         func() time.Time

	// mu serializes load-modify-save cycles and guards inflight.
	mu       sync.Mutex
	inflight map[string]*ticket
	taxOnce  sync.Once
}

func (s *Service) taxonomy() *zone.Taxonomy {
	s.taxOnce.Do(func() {
		if s.Taxonomy == nil {
			s.Taxonomy = zone.Default()
		}
	})
	return s.Taxonomy
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) generator() Generator {
	if s.Generator == nil {
		return &task.Generator{}
	}
	return s.Generator
}

// PlanKey is the persistence key of the plan with the given cleaned name.
func PlanKey(name string) string {
	return planPrefix + name
}

// Create stores a new plan with an empty checklist.
func (s *Service) Create(ctx context.Context, name string, meta plan.Meta, params task.Params) (*plan.Plan, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	p, err := plan.New(name, meta, params)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.Persistence.Get(ctx, PlanKey(p.Name)); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrPlanExists, p.Name)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	p.Updated = s.now()
	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Load returns the stored plan for name.
func (s *Service) Load(ctx context.Context, name string) (*plan.Plan, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	n, err := plan.CleanName(name)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, n)
}

// Plans returns the sorted names of stored plans.
func (s *Service) Plans(ctx context.Context) ([]string, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	keys := s.Persistence.Keys(ctx, planPrefix)
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, strings.TrimPrefix(k, planPrefix))
	}
	return names, nil
}

// Delete removes a plan.
func (s *Service) Delete(ctx context.Context, name string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	n, err := plan.CleanName(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.load(ctx, n); err != nil {
		return err
	}
	return s.Persistence.Delete(ctx, PlanKey(n))
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// ToggleResult reports the outcome of a toggle.
type ToggleResult struct {
	Key     string        `json:"key"`
	Task    string        `json:"task"`
	State   overlay.State `json:"-"`
	Status  string        `json:"state"`
	Changed bool          `json:"changed"`
}

// ToggleCompleted flips completion of the item with the given identity key.
// Toggling an excluded item leaves it unchanged and reports Changed=false.
func (s *Service) ToggleCompleted(ctx context.Context, name, key string) (ToggleResult, error) {
	return s.toggle(ctx, name, key, (*overlay.Overlay).ToggleCompleted)
}

// ToggleExcluded flips exclusion of the item with the given identity key.
func (s *Service) ToggleExcluded(ctx context.Context, name, key string) (ToggleResult, error) {
	return s.toggle(ctx, name, key, (*overlay.Overlay).ToggleExcluded)
}

func (s *Service) toggle(ctx context.Context, name, key string, flip func(*overlay.Overlay, string) bool) (ToggleResult, error) {
	if s.Persistence == nil {
		return ToggleResult{}, ErrNoPersistence
	}
	n, err := plan.CleanName(name)
	if err != nil {
		return ToggleResult{}, err
	}
	key = strings.TrimSpace(key)

	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.load(ctx, n)
	if err != nil {
		return ToggleResult{}, err
	}
	item, ok := zone.Find(p.Merge(s.taxonomy()), key)
	if !ok {
		return ToggleResult{}, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	changed := flip(p.Overlay, key)
	if changed {
		p.Updated = s.now()
		if err := s.save(ctx, p); err != nil {
			return ToggleResult{}, err
		}
	}
	state := p.Overlay.State(key)
	return ToggleResult{
		Key:     key,
		Task:    item.Task(),
		State:   state,
		Status:  state.String(),
		Changed: changed,
	}, nil
}

func (s *Service) load(ctx context.Context, name string) (*plan.Plan, error) {
	data, err := s.Persistence.Get(ctx, PlanKey(name))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, name)
		}
		return nil, err
	}
	p, err := plan.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("app: decode plan %s: %w", name, err)
	}
	return p, nil
}

func (s *Service) save(ctx context.Context, p *plan.Plan) error {
	data, err := p.Marshal()
	if err != nil {
		return fmt.Errorf("app: encode plan %s: %w", p.Name, err)
	}
	return s.Persistence.Set(ctx, PlanKey(p.Name), data)
}
