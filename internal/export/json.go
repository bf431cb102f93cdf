package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/odelab/internal/experiment"
)

// WriteJSON writes the full report, with every series, as indented JSON.
func WriteJSON(w io.Writer, r *experiment.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
