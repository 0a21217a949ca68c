package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/allocation"
)

// TableMarkdown renders an allocation table as a markdown table: one row per
// day, one column per asset, reshaped from the (day, asset) keyed table.
//
// Assets missing on a day are rendered as "-". An empty table renders a
// short note instead of an empty grid.
func TableMarkdown(title string, t allocation.Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	if len(t) == 0 {
		fmt.Fprintln(&b, "No day requested.")
		return b.String()
	}

	assets := t.Assets()

	fmt.Fprintf(&b, "| Date |")
	for _, asset := range assets {
		fmt.Fprintf(&b, " %s |", asset)
	}
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "|:---|")
	for range assets {
		fmt.Fprintf(&b, "---:|")
	}
	fmt.Fprintln(&b)

	for _, on := range t.Days() {
		fmt.Fprintf(&b, "| %s |", on)
		for _, asset := range assets {
			if w, ok := t.Get(on, asset); ok {
				fmt.Fprintf(&b, " %s |", w)
			} else {
				fmt.Fprintf(&b, " - |")
			}
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}
