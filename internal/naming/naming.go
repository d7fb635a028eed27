// Package naming formats the lowercase identifiers used in content files
// into user-facing display names.
package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// DisplayName turns a content identifier like "old fenwick" or "gold_ore"
// into a display name like "Old Fenwick" / "Gold Ore"
func DisplayName(id string) string {
	cleaned := strings.ReplaceAll(id, "_", " ")
	return titleCaser.String(cleaned)
}
