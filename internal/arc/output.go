package arc

import "time"

// DefaultOutputName returns the fallback output filename for a conversion
// run at t, e.g. "arc_bookmarks_2026_08_26.html".
func DefaultOutputName(t time.Time) string {
	return "arc_bookmarks_" + t.Format("2006_01_02") + ".html"
}
