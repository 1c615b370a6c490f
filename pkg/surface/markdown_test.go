package surface_test

import (
	"strings"
	"testing"

	"github.com/scorelens/scorelens/pkg/analytics"
	"github.com/scorelens/scorelens/pkg/surface"
)

func TestMarkdownRenderer_Sections(t *testing.T) {
	r := &surface.MarkdownRenderer{}
	md := r.BuildMarkdown(sampleReport())

	for _, want := range []string{
		"## Credit analysis: cl-3021",
		"**Fair (614)** — generated 2025-08-01",
		"### Bureau scores",
		"| Experian | 648 | 2025-07-10 |",
		"Spread: 56 points",
		"### Trends",
		"- Experian: improving +36 (+5.88%)",
		"- TransUnion: insufficient data",
		"### Alerts",
		":orange_circle: **warning** — Equifax score fell 44 points",
		"  - Pull the full Equifax report",
		"### Projection",
		"| 1 | Crestline Card Services | +55-99 | critical |",
		"Timeline: 614 -> 691 -> 757",
		"Best case 845, conservative 735.",
		"### Next disputes",
		"- **Axiom Recovery ($1,840.50)** — Inaccurate Information (round 3: Escalation & Warning)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestMarkdownRenderer_Empty(t *testing.T) {
	r := &surface.MarkdownRenderer{}
	md := r.BuildMarkdown(&analytics.ClientReport{ClientID: "cl-empty"})

	if !strings.Contains(md, "No scores on file") {
		t.Error("expected placeholder for missing band")
	}
	if !strings.Contains(md, "### Alerts\n\nNone.") {
		t.Error("expected 'None.' under alerts")
	}
	if strings.Contains(md, "### Projection") {
		t.Error("projection section should be omitted without items")
	}
}
