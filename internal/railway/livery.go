package railway

import (
	"fmt"
	"strings"
)

// findLiveryEntry returns the first livery entry (in ascending key order)
// whose train list contains the given id. Overlapping train lists are a
// configuration hazard resolved by that first-match rule.
func findLiveryEntry(liveries []LiveryEntry, trainID string) (LiveryEntry, bool) {
	for _, entry := range liveries {
		for _, id := range entry.Trains {
			if id == trainID {
				return entry, true
			}
		}
	}
	return LiveryEntry{}, false
}

// LiveryCSS renders the livery table as a stylesheet of .csr-livery-<key>
// rules for the map's train markers. Entries without styling still emit an
// empty rule so every configured key has a selector.
func LiveryCSS(liveries []LiveryEntry) string {
	var b strings.Builder

	for _, entry := range liveries {
		fmt.Fprintf(&b, ".csr-livery-%d { ", entry.Key)

		if livery := entry.Livery; livery != nil {
			fmt.Fprintf(&b, "background: %s; ", livery.Color)
			if livery.Text != "" {
				fmt.Fprintf(&b, "color: %s; ", livery.Text)
			}
			if livery.Stroke != "" {
				fmt.Fprintf(&b, "stroke: %s; -webkit-text-stroke-color: %s; ", livery.Stroke, livery.Stroke)
			}
		}

		b.WriteString("}\n")
	}

	return b.String()
}
