// Space resolution
// Contains: ResolveSpaces, SpaceRoots, SpaceRoot

package sidebar

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
)

// ErrMalformedSpace is returned when a pin-state marker is the last entry
// of a space's container-ID list, leaving it with no root identifier.
var ErrMalformedSpace = errors.New("pin marker without a following identifier")

// SpaceRoot binds a root item identifier to the title of the space it
// belongs to.
type SpaceRoot struct {
	ID    string
	Title string
}

// SpaceRoots holds the pinned and unpinned root identifiers of all spaces,
// in document order.
type SpaceRoots struct {
	Pinned   []SpaceRoot
	Unpinned []SpaceRoot
}

// ResolveSpaces walks the spaces in document order and classifies each
// space's root identifiers by pin state. Untitled spaces get a generated
// "Space N" title, counted 1-based over untitled spaces only. A root
// identifier claimed by several spaces keeps its first position but takes
// the last title (last write wins, no detection).
func ResolveSpaces(spaces []Space) (SpaceRoots, error) {
	var roots SpaceRoots
	pinnedPos := make(map[string]int)
	unpinnedPos := make(map[string]int)

	untitled := 1
	for _, space := range spaces {
		title := space.Title
		if !space.HasTitle {
			title = "Space " + strconv.Itoa(untitled)
			untitled++
		}

		for i, entry := range space.containerIDs {
			if !entry.IsObject() {
				continue
			}

			var target *[]SpaceRoot
			var pos map[string]int
			switch {
			case entry.Get("pinned").Exists():
				target, pos = &roots.Pinned, pinnedPos
			case entry.Get("unpinned").Exists():
				target, pos = &roots.Unpinned, unpinnedPos
			default:
				continue
			}

			if i+1 >= len(space.containerIDs) {
				return SpaceRoots{}, fmt.Errorf("space %q: %w", title, ErrMalformedSpace)
			}
			id := space.containerIDs[i+1].String()
			if at, ok := pos[id]; ok {
				(*target)[at].Title = title
				continue
			}
			pos[id] = len(*target)
			*target = append(*target, SpaceRoot{ID: id, Title: title})
		}
	}

	slog.Debug("resolved spaces", "count", len(spaces))
	return roots, nil
}
