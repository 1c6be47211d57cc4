// Sidebar document parsing
// Contains: Parse, Document, Space, Item views over the raw JSON

package sidebar

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrNoGlobalContainer is returned when no entry in the sidebar container
// list carries a "global" marker, or when the marker has no container
// following it.
var ErrNoGlobalContainer = errors.New("no container with 'global' found in the sidebar data")

// ErrInvalidDocument is returned when the input is not valid JSON at all.
var ErrInvalidDocument = errors.New("sidebar data is not valid JSON")

// Tab is the saved-tab payload that makes an item a bookmark.
type Tab struct {
	SavedTitle string
	SavedURL   string
}

// Item is the flat sidebar record for both folders and saved tabs. The two
// are told apart by payload shape: a non-nil Tab means bookmark, a present
// title without a tab means folder. HasTitle keeps the present-but-empty
// case distinct from an absent title.
type Item struct {
	ID       string
	ParentID string
	Title    string
	HasTitle bool
	Tab      *Tab
}

// Space is a named workspace. Its container-ID list interleaves pin-state
// marker objects with the root identifiers they apply to; SpaceRoots walks
// it, so the raw entries are kept as parsed.
type Space struct {
	Title        string
	HasTitle     bool
	containerIDs []gjson.Result
}

// Document is a read-only view over the "global" container of a parsed
// sidebar snapshot. It is built once per run and discarded after the tree
// is constructed.
type Document struct {
	spaces []Space
	items  []Item
}

// Parse locates the global container inside the sidebar snapshot and
// extracts its spaces and items. The container list marks the container of
// interest with an entry carrying a "global" key; the payload itself is the
// entry immediately after that marker.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidDocument
	}

	containers := gjson.GetBytes(data, "sidebar.containers")
	if !containers.IsArray() {
		return nil, ErrNoGlobalContainer
	}

	entries := containers.Array()
	target := -1
	for i, c := range entries {
		if c.Get("global").Exists() {
			target = i + 1
			break
		}
	}
	if target < 0 || target >= len(entries) {
		return nil, ErrNoGlobalContainer
	}

	global := entries[target]
	return &Document{
		spaces: parseSpaces(global.Get("spaces")),
		items:  parseItems(global.Get("items")),
	}, nil
}

// Spaces returns the container's spaces in document order.
func (d *Document) Spaces() []Space { return d.spaces }

// Items returns the container's items in document order.
func (d *Document) Items() []Item { return d.items }

func parseSpaces(list gjson.Result) []Space {
	var out []Space
	for _, entry := range list.Array() {
		if !entry.IsObject() {
			continue
		}
		title := entry.Get("title")
		out = append(out, Space{
			Title:        title.String(),
			HasTitle:     title.Exists() && title.Type != gjson.Null,
			containerIDs: entry.Get("newContainerIDs").Array(),
		})
	}
	return out
}

func parseItems(list gjson.Result) []Item {
	var out []Item
	for _, entry := range list.Array() {
		// The items array mixes records with bare identifiers; only
		// object entries carry data.
		if !entry.IsObject() {
			continue
		}
		title := entry.Get("title")
		item := Item{
			ID:       entry.Get("id").String(),
			ParentID: entry.Get("parentID").String(),
			Title:    title.String(),
			HasTitle: title.Exists() && title.Type != gjson.Null,
		}
		if tab := entry.Get("data.tab"); tab.Exists() {
			item.Tab = &Tab{
				SavedTitle: tab.Get("savedTitle").String(),
				SavedURL:   tab.Get("savedURL").String(),
			}
		}
		out = append(out, item)
	}
	return out
}
