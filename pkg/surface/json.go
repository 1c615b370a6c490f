package surface

import (
	"encoding/json"
	"io"

	"github.com/scorelens/scorelens/pkg/analytics"
)

// JSONRenderer marshals a ClientReport to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, report *analytics.ClientReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
