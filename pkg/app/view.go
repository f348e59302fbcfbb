package app

import (
	"context"

	"tableflip.dev/party/pkg/plan"
	"tableflip.dev/party/pkg/progress"
	"tableflip.dev/party/pkg/zone"
)

// View is everything a front end shows for one plan, recomputed from the
// stored state on each call.
type View struct {
	Plan    *plan.Plan        `json:"-"`
	Title   string            `json:"title"`
	Zones   []zone.MergedZone `json:"zones"`
	Summary progress.Summary  `json:"summary"`
	Budget  progress.Budget   `json:"budget"`
}

// View loads the plan and derives its merged zones, progress and budget.
func (s *Service) View(ctx context.Context, name string) (View, error) {
	p, err := s.Load(ctx, name)
	if err != nil {
		return View{}, err
	}
	zones := p.Merge(s.taxonomy())
	return View{
		Plan:    p,
		Title:   p.ReportMeta().Title(),
		Zones:   zones,
		Summary: progress.Summarize(zones, p.Overlay),
		Budget:  progress.BudgetFor(zones, p.Overlay),
	}, nil
}

// Export is a rendered checklist report and its suggested file name.
type Export struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// Export renders the plain-text checklist of the named plan.
func (s *Service) Export(ctx context.Context, name string) (Export, error) {
	p, err := s.Load(ctx, name)
	if err != nil {
		return Export{}, err
	}
	meta := p.ReportMeta()
	return Export{
		Filename: progress.ExportFilename(meta),
		Content:  progress.ExportReport(p.Merge(s.taxonomy()), p.Overlay, meta),
	}, nil
}
