package sidebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func folderItem(id, parent, title string) Item {
	return Item{ID: id, ParentID: parent, Title: title, HasTitle: true}
}

func tabItem(id, parent, savedTitle, savedURL string) Item {
	return Item{ID: id, ParentID: parent, Tab: &Tab{SavedTitle: savedTitle, SavedURL: savedURL}}
}

func TestBuildTreeMissingRootHasEmptyChildren(t *testing.T) {
	forest, count, err := BuildTree([]SpaceRoot{{ID: "nowhere", Title: "Empty"}}, nil)
	require.NoError(t, err)

	require.Len(t, forest, 1)
	assert.Equal(t, KindFolder, forest[0].Kind)
	assert.Equal(t, "Empty", forest[0].Title)
	assert.Empty(t, forest[0].Children)
	assert.Zero(t, count)
}

func TestBuildTreeBookmarkTitleFallback(t *testing.T) {
	own := tabItem("t1", "root", "saved one", "https://one")
	own.Title, own.HasTitle = "Own Title", true

	emptyOwn := tabItem("t2", "root", "saved two", "https://two")
	emptyOwn.Title, emptyOwn.HasTitle = "", true

	bare := tabItem("t3", "root", "", "")

	forest, count, err := BuildTree(
		[]SpaceRoot{{ID: "root", Title: "Space 1"}},
		[]Item{own, emptyOwn, bare},
	)
	require.NoError(t, err)
	require.Len(t, forest, 1)
	require.Len(t, forest[0].Children, 3)

	// item title -> saved title -> empty, in strict order
	assert.Equal(t, "Own Title", forest[0].Children[0].Title)
	assert.Equal(t, "saved two", forest[0].Children[1].Title)
	assert.Empty(t, forest[0].Children[2].Title)
	assert.Empty(t, forest[0].Children[2].URL)
	assert.Equal(t, 3, count)
}

func TestBuildTreeNesting(t *testing.T) {
	forest, count, err := BuildTree(
		[]SpaceRoot{{ID: "root", Title: "Work"}},
		[]Item{
			folderItem("f1", "root", "Level One"),
			folderItem("f2", "f1", "Level Two"),
			tabItem("t1", "f2", "Deep", "https://deep"),
		},
	)
	require.NoError(t, err)
	require.Len(t, forest, 1)

	one := forest[0].Children
	require.Len(t, one, 1)
	assert.Equal(t, "Level One", one[0].Title)

	two := one[0].Children
	require.Len(t, two, 1)
	assert.Equal(t, "Level Two", two[0].Title)

	leaves := two[0].Children
	require.Len(t, leaves, 1)
	assert.Equal(t, KindBookmark, leaves[0].Kind)
	assert.Equal(t, "https://deep", leaves[0].URL)
	assert.Equal(t, 1, count)
}

func TestBuildTreeCascadingDrop(t *testing.T) {
	// "ghost" has neither a tab payload nor a title; it and everything
	// hanging below it must vanish from the output.
	forest, count, err := BuildTree(
		[]SpaceRoot{{ID: "root", Title: "Work"}},
		[]Item{
			{ID: "ghost", ParentID: "root"},
			tabItem("orphan", "ghost", "Orphan", "https://orphan"),
			tabItem("kept", "root", "Kept", "https://kept"),
		},
	)
	require.NoError(t, err)
	require.Len(t, forest, 1)

	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "Kept", forest[0].Children[0].Title)
	assert.Equal(t, 1, count)
}

func TestBuildTreeSiblingOrderFollowsItemList(t *testing.T) {
	forest, _, err := BuildTree(
		[]SpaceRoot{{ID: "root", Title: "Work"}},
		[]Item{
			tabItem("b", "root", "Second", "https://b"),
			folderItem("f", "root", "Folder"),
			tabItem("a", "root", "Third", "https://a"),
		},
	)
	require.NoError(t, err)
	require.Len(t, forest[0].Children, 3)
	assert.Equal(t, "Second", forest[0].Children[0].Title)
	assert.Equal(t, "Folder", forest[0].Children[1].Title)
	assert.Equal(t, "Third", forest[0].Children[2].Title)
}

func TestBuildTreeDuplicateIdentifiersLastWins(t *testing.T) {
	forest, count, err := BuildTree(
		[]SpaceRoot{{ID: "root", Title: "Work"}},
		[]Item{
			tabItem("dup", "root", "Stale", "https://stale"),
			tabItem("other", "root", "Other", "https://other"),
			tabItem("dup", "root", "Fresh", "https://fresh"),
		},
	)
	require.NoError(t, err)

	// The later record replaces the earlier one in place.
	require.Len(t, forest[0].Children, 2)
	assert.Equal(t, "Fresh", forest[0].Children[0].Title)
	assert.Equal(t, "Other", forest[0].Children[1].Title)
	assert.Equal(t, 2, count)
}

func TestBuildTreeCycleDetected(t *testing.T) {
	// "a" and "b" list each other as parents, and "a" is a pinned root,
	// so the loop is reachable from the top of the tree.
	_, _, err := BuildTree(
		[]SpaceRoot{{ID: "a", Title: "Work"}},
		[]Item{
			folderItem("a", "b", "A"),
			folderItem("b", "a", "B"),
		},
	)
	assert.ErrorIs(t, err, ErrCycle)
}

func TestBuildTreePerSpaceFolders(t *testing.T) {
	forest, _, err := BuildTree(
		[]SpaceRoot{
			{ID: "r1", Title: "First"},
			{ID: "r2", Title: "Second"},
		},
		[]Item{
			tabItem("t1", "r1", "One", "https://one"),
			tabItem("t2", "r2", "Two", "https://two"),
		},
	)
	require.NoError(t, err)
	require.Len(t, forest, 2)
	assert.Equal(t, "First", forest[0].Title)
	assert.Equal(t, "Second", forest[1].Title)
	require.Len(t, forest[0].Children, 1)
	require.Len(t, forest[1].Children, 1)
}
