// Netscape Bookmark File serialization

package netscape

import (
	"fmt"
	"html"
	"strings"

	"github.com/arclab/arc2html/internal/sidebar"
)

const header = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>`

// Serialize renders the bookmark forest as a Netscape Bookmark File.
// Nesting starts at level 1 and each level indents by one tab. Titles and
// URLs are HTML-escaped.
func Serialize(forest []sidebar.Node) string {
	var sb strings.Builder
	sb.WriteString(header)
	writeNodes(&sb, forest, 1)
	sb.WriteString("\n</DL><p>")
	return sb.String()
}

func writeNodes(sb *strings.Builder, nodes []sidebar.Node, level int) {
	indent := strings.Repeat("\t", level)
	for _, n := range nodes {
		switch n.Kind {
		case sidebar.KindFolder:
			fmt.Fprintf(sb, "\n%s<DT><H3>%s</H3>", indent, html.EscapeString(n.Title))
			fmt.Fprintf(sb, "\n%s<DL><p>", indent)
			writeNodes(sb, n.Children, level+1)
			fmt.Fprintf(sb, "\n%s</DL><p>", indent)
		case sidebar.KindBookmark:
			fmt.Fprintf(sb, "\n%s<DT><A HREF=\"%s\">%s</A>", indent, html.EscapeString(n.URL), html.EscapeString(n.Title))
		}
	}
}
