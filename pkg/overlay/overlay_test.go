package overlay

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultsForUnseenKeys(t *testing.T) {
	var nilOverlay *Overlay
	for _, o := range []*Overlay{New(), {}, nilOverlay} {
		if o.IsCompleted("buffet-0") || o.IsExcluded("buffet-0") {
			t.Fatalf("unseen key should read false")
		}
		if got := o.State("buffet-0"); got != Open {
			t.Fatalf("expected open, got %s", got)
		}
	}
}

func TestTogglesAreIndependent(t *testing.T) {
	o := New()
	if !o.ToggleCompleted("checklist-1") {
		t.Fatalf("expected toggle to apply")
	}
	o.ToggleExcluded("checklist-1")
	if !o.IsCompleted("checklist-1") {
		t.Fatalf("excluding must not change completion")
	}
	if got := o.State("checklist-1"); got != Excluded {
		t.Fatalf("expected excluded, got %s", got)
	}

	o.ToggleExcluded("checklist-1")
	if got := o.State("checklist-1"); got != Done {
		t.Fatalf("expected done after re-including, got %s", got)
	}

	o.ToggleExcluded("buffet-2")
	o.ToggleCompleted("checklist-1")
	if !o.IsExcluded("buffet-2") {
		t.Fatalf("completion toggle must not change exclusion")
	}
}

func TestToggleCompletedOnExcludedIsNoop(t *testing.T) {
	o := New()
	o.ToggleExcluded("arrival-0")
	if o.ToggleCompleted("arrival-0") {
		t.Fatalf("toggling an excluded item should report no change")
	}
	if o.IsCompleted("arrival-0") {
		t.Fatalf("excluded item must not become completed")
	}
}

func TestMapsStaySparse(t *testing.T) {
	o := New()
	o.ToggleCompleted("a")
	o.ToggleCompleted("a")
	o.ToggleExcluded("b")
	o.ToggleExcluded("b")
	if len(o.Completed) != 0 || len(o.Excluded) != 0 {
		t.Fatalf("expected empty maps after double toggles, got %+v", o)
	}
}

func TestRekey(t *testing.T) {
	o := New()
	o.ToggleCompleted("checklist-0")
	o.ToggleCompleted("buffet-1")
	o.ToggleExcluded("checklist-3")
	o.ToggleExcluded("checklist-5")

	moved := o.Rekey(func(key string) (string, bool) {
		switch key {
		case "checklist-0":
			return "checklist-2", true
		case "checklist-3":
			return "checklist-0", true
		case "checklist-5":
			return "", false
		}
		return key, true
	})
	if diff := cmp.Diff([]string{"buffet-1", "checklist-2"}, moved.CompletedKeys()); diff != "" {
		t.Fatalf("completed keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"checklist-0"}, moved.ExcludedKeys()); diff != "" {
		t.Fatalf("excluded keys mismatch (-want +got):\n%s", diff)
	}
	if !o.IsExcluded("checklist-5") {
		t.Fatalf("Rekey must not modify the receiver")
	}
}

func TestJSONShape(t *testing.T) {
	o := New()
	o.ToggleCompleted("buffet-0")
	o.ToggleExcluded("checklist-4")
	b, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"completed":{"buffet-0":true},"excluded":{"checklist-4":true}}`
	if string(b) != want {
		t.Fatalf("unexpected json %s", b)
	}
	var back Overlay
	if err := json.NewDecoder(strings.NewReader(want)).Decode(&back); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.State("checklist-4") != Excluded || back.State("buffet-0") != Done {
		t.Fatalf("decoded overlay lost state: %+v", back)
	}
}
