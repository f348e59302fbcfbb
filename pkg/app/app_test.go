package app

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/party/pkg/overlay"
	"tableflip.dev/party/pkg/plan"
	"tableflip.dev/party/pkg/store"
	"tableflip.dev/party/pkg/task"
	"tableflip.dev/party/pkg/zone"
)

type memoryPersistence struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{blobs: make(map[string][]byte)}
}

func (m *memoryPersistence) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *memoryPersistence) Set(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = append([]byte(nil), data...)
	return nil
}

func (m *memoryPersistence) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

func (m *memoryPersistence) Keys(_ context.Context, prefix string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k := range m.blobs {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (m *memoryPersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, errors.New("memory: watch unsupported")
}

type staticGenerator struct {
	items []task.Item
}

func (g staticGenerator) Generate(context.Context, task.Params) []task.Item {
	return append([]task.Item(nil), g.items...)
}

// blockingGenerator blocks its first call until the context is cancelled.
type blockingGenerator struct {
	started chan struct{}
	once    sync.Once
	calls   int
	mu      sync.Mutex
	stale   []task.Item
	fresh   []task.Item
}

func (g *blockingGenerator) Generate(ctx context.Context, _ task.Params) []task.Item {
	g.mu.Lock()
	g.calls++
	first := g.calls == 1
	g.mu.Unlock()
	if first {
		g.once.Do(func() { close(g.started) })
		<-ctx.Done()
		return g.stale
	}
	return g.fresh
}

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestService(gen Generator) *Service {
	return &Service{
		Persistence: newMemoryPersistence(),
		Generator:   gen,
		Now:         func() time.Time { return fixedNow },
	}
}

func cake() task.Item {
	return task.Item{Category: task.CategoryFood, Task: "Order birthday cake", Priority: task.PriorityHigh, EstimatedCost: "$40-80"}
}

func balloons() task.Item {
	return task.Item{Category: task.CategoryDecorations, Task: "Buy balloons", Priority: task.PriorityMedium, EstimatedCost: "$15-30"}
}

func TestServiceCreateAndLoad(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)

	p, err := svc.Create(ctx, "Emma's Party", plan.Meta{ChildName: "Emma"}, task.Params{Theme: "Dinosaur", GuestCount: 12})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Name != "emma_s_party" {
		t.Fatalf("expected cleaned name, got %q", p.Name)
	}
	if _, err := svc.Create(ctx, "emma's party", plan.Meta{}, task.Params{}); !errors.Is(err, ErrPlanExists) {
		t.Fatalf("expected ErrPlanExists, got %v", err)
	}

	loaded, err := svc.Load(ctx, "emma_s_party")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Params.Theme != "Dinosaur" || loaded.Meta.ChildName != "Emma" {
		t.Fatalf("unexpected plan %+v", loaded)
	}
	if len(loaded.Items) != 0 {
		t.Fatalf("new plan should have no checklist, got %d items", len(loaded.Items))
	}

	names, err := svc.Plans(ctx)
	if err != nil {
		t.Fatalf("plans: %v", err)
	}
	if diff := cmp.Diff([]string{"emma_s_party"}, names); diff != "" {
		t.Fatalf("plans mismatch (-want +got):\n%s", diff)
	}

	if _, err := svc.Load(ctx, "nobody"); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestServiceRequiresPersistence(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Plans(context.Background()); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
	if _, err := svc.Generate(context.Background(), "x"); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
}

func TestServiceGenerateUsesFallbackWithoutGenerator(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)
	if _, err := svc.Create(ctx, "sam", plan.Meta{}, task.Params{Activities: []string{"bounce house"}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	p, err := svc.Generate(ctx, "sam")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(p.Items) == 0 || p.Generation == "" {
		t.Fatalf("expected fallback checklist with generation stamp, got %d items %q", len(p.Items), p.Generation)
	}
	if !p.Generated.Equal(fixedNow) {
		t.Fatalf("expected generated time %v, got %v", fixedNow, p.Generated)
	}
}

func TestServiceToggles(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(staticGenerator{items: []task.Item{cake(), balloons()}})
	if _, err := svc.Create(ctx, "emma", plan.Meta{}, task.Params{}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Generate(ctx, "emma"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	res, err := svc.ToggleCompleted(ctx, "emma", "checklist-0")
	if err != nil {
		t.Fatalf("toggle completed: %v", err)
	}
	if !res.Changed || res.State != overlay.Done || res.Task != "Order birthday cake" {
		t.Fatalf("unexpected toggle result %+v", res)
	}

	if _, err := svc.ToggleExcluded(ctx, "emma", "checklist-1"); err != nil {
		t.Fatalf("toggle excluded: %v", err)
	}
	res, err = svc.ToggleCompleted(ctx, "emma", "checklist-1")
	if err != nil {
		t.Fatalf("toggling an excluded item must not fail: %v", err)
	}
	if res.Changed || res.State != overlay.Excluded {
		t.Fatalf("expected no-op on excluded item, got %+v", res)
	}

	if _, err := svc.ToggleCompleted(ctx, "emma", "arrival-0"); err != nil {
		t.Fatalf("toggle static item: %v", err)
	}
	if _, err := svc.ToggleCompleted(ctx, "emma", "checklist-9"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}

	p, err := svc.Load(ctx, "emma")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"arrival-0", "checklist-0"}, p.Overlay.CompletedKeys()); diff != "" {
		t.Fatalf("completed keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"checklist-1"}, p.Overlay.ExcludedKeys()); diff != "" {
		t.Fatalf("excluded keys mismatch (-want +got):\n%s", diff)
	}
}

func TestServiceRegenerationCarriesFlagsForward(t *testing.T) {
	ctx := context.Background()
	gen := &staticGenerator{items: []task.Item{cake(), balloons()}}
	svc := newTestService(gen)
	if _, err := svc.Create(ctx, "emma", plan.Meta{}, task.Params{}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Generate(ctx, "emma"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.ToggleCompleted(ctx, "emma", "checklist-1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	gen.items = []task.Item{
		{Category: task.CategoryDrinks, Task: "Juice boxes", EstimatedCost: "$10-20"},
		balloons(),
	}
	svc.Generator = gen
	p, err := svc.Regenerate(ctx, "emma", task.Params{Theme: "Space"})
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if p.Params.Theme != "Space" {
		t.Fatalf("expected params to be replaced, got %+v", p.Params)
	}
	if diff := cmp.Diff([]string{"checklist-1"}, p.Overlay.CompletedKeys()); diff != "" {
		t.Fatalf("completed keys mismatch (-want +got):\n%s", diff)
	}
	item, ok := zone.Find(p.Merge(zone.Default()), "checklist-1")
	if !ok || item.Task() != "Buy balloons" {
		t.Fatalf("expected balloons at checklist-1, got %+v", item)
	}
}

func TestServiceGenerateSupersedesInFlight(t *testing.T) {
	ctx := context.Background()
	gen := &blockingGenerator{
		started: make(chan struct{}),
		stale:   []task.Item{{Category: "Other", Task: "stale"}},
		fresh:   []task.Item{cake()},
	}
	svc := newTestService(gen)
	if _, err := svc.Create(ctx, "emma", plan.Meta{}, task.Params{}); err != nil {
		t.Fatalf("create: %v", err)
	}

	staleErr := make(chan error, 1)
	go func() {
		_, err := svc.Generate(ctx, "emma")
		staleErr <- err
	}()
	<-gen.started

	p, err := svc.Generate(ctx, "emma")
	if err != nil {
		t.Fatalf("fresh generate: %v", err)
	}
	if diff := cmp.Diff([]task.Item{cake()}, p.Items); diff != "" {
		t.Fatalf("fresh items mismatch (-want +got):\n%s", diff)
	}

	select {
	case err := <-staleErr:
		if !errors.Is(err, ErrSuperseded) {
			t.Fatalf("expected ErrSuperseded, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("stale generation did not return")
	}

	stored, err := svc.Load(ctx, "emma")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]task.Item{cake()}, stored.Items); diff != "" {
		t.Fatalf("stored items mismatch (-want +got):\n%s", diff)
	}
}

func TestServiceViewAndExport(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(staticGenerator{items: []task.Item{cake(), balloons()}})
	if _, err := svc.Create(ctx, "emma", plan.Meta{ChildName: "Emma", Date: "2026-06-01"}, task.Params{Theme: "Dinosaur", GuestCount: 10, Budget: "$300"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Generate(ctx, "emma"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.ToggleCompleted(ctx, "emma", "checklist-0"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	view, err := svc.View(ctx, "emma")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if view.Title != "Emma's Dinosaur Party" {
		t.Fatalf("unexpected title %q", view.Title)
	}
	total := zone.Default().StaticCount() + 2
	if view.Summary.Progress.Active != total || view.Summary.Progress.Completed != 1 {
		t.Fatalf("unexpected progress %+v", view.Summary.Progress)
	}
	if view.Budget.Total.Low == 0 {
		t.Fatalf("expected a non-zero budget, got %+v", view.Budget.Total)
	}

	exp, err := svc.Export(ctx, "emma")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if exp.Filename != "party-checklist-Emma.txt" {
		t.Fatalf("unexpected filename %q", exp.Filename)
	}
	if !strings.Contains(exp.Content, "☑ Order birthday cake ($40-80)") {
		t.Fatalf("expected completed cake line in report:\n%s", exp.Content)
	}
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)
	if _, err := svc.Create(ctx, "emma", plan.Meta{}, task.Params{}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, "emma"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, "emma"); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestServiceDefaultTaxonomyConcurrentUse(t *testing.T) {
	ctx := context.Background()
	seed := newTestService(staticGenerator{items: []task.Item{cake(), balloons()}})
	if _, err := seed.Create(ctx, "emma", plan.Meta{}, task.Params{}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := seed.Generate(ctx, "emma"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Run with go test -race; the first calls on a zero Taxonomy share it.
	svc := &Service{Persistence: seed.Persistence}
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := svc.View(ctx, "emma")
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := svc.ToggleCompleted(ctx, "emma", "checklist-0")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent call: %v", err)
		}
	}
	if svc.Taxonomy == nil {
		t.Fatal("expected the default taxonomy to be installed")
	}
}
