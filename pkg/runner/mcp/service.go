// Package mcp provides the Model Context Protocol server integration for party.
package mcp

import (
	"context"
	"errors"

	"tableflip.dev/party/pkg/app"
	"tableflip.dev/party/pkg/overlay"
	"tableflip.dev/party/pkg/progress"
	"tableflip.dev/party/pkg/task"
	"tableflip.dev/party/pkg/zone"
)

// Service projects app.Service results into transport-friendly shapes.
type Service struct {
	App *app.Service
}

// PlanSummary describes a stored plan and its progress.
type PlanSummary struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Generation string `json:"generation,omitempty"`
	Completed  int    `json:"completedCount"`
	Active     int    `json:"activeCount"`
	Percent    int    `json:"percent"`
	Excluded   int    `json:"excludedCount"`
}

// ItemDTO is a transport-friendly projection of a merged item.
type ItemDTO struct {
	Key           string `json:"key"`
	Zone          string `json:"zone"`
	Provenance    string `json:"provenance"`
	Task          string `json:"task"`
	Category      string `json:"category,omitempty"`
	Priority      string `json:"priority,omitempty"`
	EstimatedCost string `json:"estimatedCost,omitempty"`
	SearchTerms   string `json:"searchTerms,omitempty"`
	State         string `json:"state"`
	IsCompleted   bool   `json:"isCompleted"`
	IsExcluded    bool   `json:"isExcluded"`
}

// ZoneDTO is one zone with its items and counts.
type ZoneDTO struct {
	ID        string    `json:"id"`
	Emoji     string    `json:"emoji"`
	Name      string    `json:"name"`
	Completed int       `json:"completedCount"`
	Active    int       `json:"activeCount"`
	Items     []ItemDTO `json:"items"`
}

// ChecklistDTO is the full merged view of a plan.
type ChecklistDTO struct {
	Plan    PlanSummary      `json:"plan"`
	Zones   []ZoneDTO        `json:"zones"`
	Summary progress.Summary `json:"summary"`
}

// NewService builds a service wrapper around the app service.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

func (s *Service) app() (*app.Service, error) {
	if s.App == nil {
		return nil, errors.New("service is not configured")
	}
	return s.App, nil
}

// ListPlans returns a summary for every stored plan.
func (s *Service) ListPlans(ctx context.Context) ([]PlanSummary, error) {
	a, err := s.app()
	if err != nil {
		return nil, err
	}
	names, err := a.Plans(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PlanSummary, 0, len(names))
	for _, name := range names {
		v, err := a.View(ctx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, summarize(v))
	}
	return out, nil
}

// Checklist returns the merged checklist of a plan.
func (s *Service) Checklist(ctx context.Context, name string, includeExcluded bool) (ChecklistDTO, error) {
	a, err := s.app()
	if err != nil {
		return ChecklistDTO{}, err
	}
	v, err := a.View(ctx, name)
	if err != nil {
		return ChecklistDTO{}, err
	}
	return toChecklist(v, includeExcluded), nil
}

// Generate regenerates the checklist of a plan.
func (s *Service) Generate(ctx context.Context, name string, u ParamsUpdate) (ChecklistDTO, error) {
	a, err := s.app()
	if err != nil {
		return ChecklistDTO{}, err
	}
	cur, err := a.Load(ctx, name)
	if err != nil {
		return ChecklistDTO{}, err
	}
	if params, changed := u.apply(cur.Params); changed {
		_, err = a.Regenerate(ctx, name, params)
	} else {
		_, err = a.Generate(ctx, name)
	}
	if err != nil {
		return ChecklistDTO{}, err
	}
	return s.Checklist(ctx, name, false)
}

// ParamsUpdate holds optional replacements for a plan's generation
// parameters. Nil fields keep the stored value.
type ParamsUpdate struct {
	Theme         *string
	Age           *int
	Venue         *string
	Budget        *string
	Guests        *int
	Activities    *string
	HireCharacter *bool
}

func (u ParamsUpdate) apply(p task.Params) (task.Params, bool) {
	changed := false
	if u.Theme != nil {
		p.Theme, changed = *u.Theme, true
	}
	if u.Age != nil {
		p.Age, changed = *u.Age, true
	}
	if u.Venue != nil {
		p.VenueType, changed = *u.Venue, true
	}
	if u.Budget != nil {
		p.Budget, changed = *u.Budget, true
	}
	if u.Guests != nil {
		p.GuestCount, changed = *u.Guests, true
	}
	if u.Activities != nil {
		p.Activities, changed = task.SplitActivities(*u.Activities), true
	}
	if u.HireCharacter != nil {
		p.HireCharacter, changed = *u.HireCharacter, true
	}
	return p, changed
}

// ToggleCompleted flips completion for an item.
func (s *Service) ToggleCompleted(ctx context.Context, name, key string) (app.ToggleResult, error) {
	a, err := s.app()
	if err != nil {
		return app.ToggleResult{}, err
	}
	return a.ToggleCompleted(ctx, name, key)
}

// ToggleExcluded flips exclusion for an item.
func (s *Service) ToggleExcluded(ctx context.Context, name, key string) (app.ToggleResult, error) {
	a, err := s.app()
	if err != nil {
		return app.ToggleResult{}, err
	}
	return a.ToggleExcluded(ctx, name, key)
}

// Budget returns the cost rollup of a plan.
func (s *Service) Budget(ctx context.Context, name string) (progress.Budget, error) {
	a, err := s.app()
	if err != nil {
		return progress.Budget{}, err
	}
	v, err := a.View(ctx, name)
	if err != nil {
		return progress.Budget{}, err
	}
	return v.Budget, nil
}

// Export renders the plain-text report of a plan.
func (s *Service) Export(ctx context.Context, name string) (app.Export, error) {
	a, err := s.app()
	if err != nil {
		return app.Export{}, err
	}
	return a.Export(ctx, name)
}

// Zones returns the taxonomy in use.
func (s *Service) Zones() *zone.Taxonomy {
	if s.App == nil || s.App.Taxonomy == nil {
		return zone.Default()
	}
	return s.App.Taxonomy
}

func summarize(v app.View) PlanSummary {
	return PlanSummary{
		Name:       v.Plan.Name,
		Title:      v.Title,
		Generation: v.Plan.Generation,
		Completed:  v.Summary.Progress.Completed,
		Active:     v.Summary.Progress.Active,
		Percent:    v.Summary.Percent,
		Excluded:   v.Summary.Excluded,
	}
}

func toChecklist(v app.View, includeExcluded bool) ChecklistDTO {
	o := v.Plan.Overlay
	zones := make([]ZoneDTO, 0, len(v.Zones))
	for _, z := range v.Zones {
		p := progress.ZoneProgress(z, o)
		dto := ZoneDTO{
			ID:        z.ID,
			Emoji:     z.Emoji,
			Name:      z.Name,
			Completed: p.Completed,
			Active:    p.Active,
			Items:     make([]ItemDTO, 0, len(z.Items)),
		}
		for _, it := range z.Items {
			if o.IsExcluded(it.Key) && !includeExcluded {
				continue
			}
			dto.Items = append(dto.Items, toItem(it, o))
		}
		zones = append(zones, dto)
	}
	return ChecklistDTO{
		Plan:    summarize(v),
		Zones:   zones,
		Summary: v.Summary,
	}
}

func toItem(it zone.MergedItem, o *overlay.Overlay) ItemDTO {
	return ItemDTO{
		Key:           it.Key,
		Zone:          it.ZoneID,
		Provenance:    string(it.Provenance),
		Task:          it.Task(),
		Category:      it.Category(),
		Priority:      it.Priority(),
		EstimatedCost: it.CostEstimate(),
		SearchTerms:   it.SearchTerms(),
		State:         o.State(it.Key).String(),
		IsCompleted:   o.IsCompleted(it.Key),
		IsExcluded:    o.IsExcluded(it.Key),
	}
}
