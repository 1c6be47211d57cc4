// Pipeline orchestration: raw sidebar JSON in, Netscape HTML out

package convert

import (
	"log/slog"

	"github.com/arclab/arc2html/internal/netscape"
	"github.com/arclab/arc2html/internal/sidebar"
)

// Stats carries the diagnostic counts of one conversion. They never affect
// control flow.
type Stats struct {
	Spaces    int
	Bookmarks int
}

// Run converts a raw sidebar snapshot into Netscape bookmark HTML. Any
// error aborts the conversion; there is no partial result.
func Run(data []byte) (string, Stats, error) {
	doc, err := sidebar.Parse(data)
	if err != nil {
		return "", Stats{}, err
	}

	slog.Info("getting spaces")
	roots, err := sidebar.ResolveSpaces(doc.Spaces())
	if err != nil {
		return "", Stats{}, err
	}

	slog.Info("converting to bookmarks")
	forest, bookmarks, err := sidebar.BuildTree(roots.Pinned, doc.Items())
	if err != nil {
		return "", Stats{}, err
	}

	slog.Info("converting bookmarks to HTML")
	out := netscape.Serialize(forest)
	slog.Debug("HTML converted")

	return out, Stats{Spaces: len(doc.Spaces()), Bookmarks: bookmarks}, nil
}
