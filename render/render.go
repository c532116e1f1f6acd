// Package render formats catalog records for console output.
package render

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/nordicast/go-podplay/podplay"
)

// Detail renders fields as an aligned two-column block.
func Detail(title string, fields []FieldValue) string {
	var sb strings.Builder
	if title != "" {
		fmt.Fprintf(&sb, "\n%s\n\n", title)
	}

	width := 0
	for _, field := range fields {
		if len(field.Name) > width {
			width = len(field.Name)
		}
	}
	for _, field := range fields {
		fmt.Fprintf(&sb, "  %-*s  %s\n", width, field.Name, field.Value)
	}

	return sb.String()
}

// Table renders rows as a fixed-order column table.
func Table(title string, header []string, rows [][]string) string {
	if len(rows) == 0 {
		if title != "" {
			return title + ": No results\n"
		}
		return "No results\n"
	}

	var sb strings.Builder
	if title != "" {
		fmt.Fprintf(&sb, "\n%s (%d):\n\n", title, len(rows))
	}

	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	return sb.String()
}

// CategoryTree draws a category forest as an ASCII tree, one root per
// top-level heading.
func CategoryTree(roots []*podplay.Category) string {
	var sb strings.Builder
	for _, root := range roots {
		fmt.Fprintf(&sb, "# %s (%d)\n", root.Name, root.ID)
		writeChildren(&sb, root.Children, "")
	}
	return sb.String()
}

func writeChildren(sb *strings.Builder, children []*podplay.Category, prefix string) {
	for i, child := range children {
		leaf := "├── "
		childPrefix := prefix + "│   "
		if i == len(children)-1 {
			leaf = "└── "
			childPrefix = prefix + "    "
		}
		fmt.Fprintf(sb, "%s%s%s (%d)\n", prefix, leaf, child.Name, child.ID)
		writeChildren(sb, child.Children, childPrefix)
	}
}

// Duration formats an episode length in seconds as a compact h/m/s string.
func Duration(seconds int64) string {
	hours := seconds / 3600
	remainder := seconds % 3600
	minutes := remainder / 60
	secs := remainder % 60

	var sb strings.Builder
	if hours > 0 {
		fmt.Fprintf(&sb, "%02dh", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&sb, "%02dm", minutes)
	}
	fmt.Fprintf(&sb, "%02ds", secs)
	return sb.String()
}
