// Bookmark tree reconstruction
// Contains: BuildTree, Node

package sidebar

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrCycle is returned when an item's parent-identifier chain loops back
// onto itself.
var ErrCycle = errors.New("cycle in parent-identifier chain")

// NodeKind tags a Node as either a folder or a bookmark leaf.
type NodeKind string

const (
	KindFolder   NodeKind = "folder"
	KindBookmark NodeKind = "bookmark"
)

// Node is one entry of the reconstructed bookmark tree. Folders carry
// Children, bookmarks carry a URL.
type Node struct {
	Kind     NodeKind
	Title    string
	URL      string
	Children []Node
}

// BuildTree reconstructs one folder per pinned space root from the flat
// item list, linking items by parent identifier. Sibling order follows the
// item list; for duplicate identifiers the last record wins but keeps the
// first record's position. Items with neither a tab payload nor a title
// are dropped together with everything below them. Returns the forest and
// the number of bookmark leaves emitted.
func BuildTree(pinned []SpaceRoot, items []Item) ([]Node, int, error) {
	index := make(map[string]Item, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		if _, seen := index[item.ID]; !seen {
			order = append(order, item.ID)
		}
		index[item.ID] = item
	}

	children := make(map[string][]string)
	for _, id := range order {
		if parent := index[id].ParentID; parent != "" {
			children[parent] = append(children[parent], id)
		}
	}

	bookmarks := 0
	var expand func(parentID string, path map[string]bool) ([]Node, error)
	expand = func(parentID string, path map[string]bool) ([]Node, error) {
		var nodes []Node
		for _, id := range children[parentID] {
			item := index[id]
			switch {
			case item.Tab != nil:
				title := item.Tab.SavedTitle
				if item.HasTitle && item.Title != "" {
					title = item.Title
				}
				nodes = append(nodes, Node{Kind: KindBookmark, Title: title, URL: item.Tab.SavedURL})
				bookmarks++
			case item.HasTitle:
				if path[id] {
					return nil, fmt.Errorf("item %q: %w", id, ErrCycle)
				}
				path[id] = true
				kids, err := expand(id, path)
				if err != nil {
					return nil, err
				}
				delete(path, id)
				nodes = append(nodes, Node{Kind: KindFolder, Title: item.Title, Children: kids})
			}
		}
		return nodes, nil
	}

	var forest []Node
	for _, root := range pinned {
		kids, err := expand(root.ID, map[string]bool{root.ID: true})
		if err != nil {
			return nil, 0, err
		}
		forest = append(forest, Node{Kind: KindFolder, Title: root.Title, Children: kids})
	}

	slog.Debug("built bookmark tree", "bookmarks", bookmarks)
	return forest, bookmarks, nil
}
