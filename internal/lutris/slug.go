package lutris

import "strings"

var slugReplacer = strings.NewReplacer(
	" ", "-",
	":", "",
	"'", "",
	"®", "",
	"™", "",
	".", "",
	"&", "and",
)

// Slug derives the identifier Lutris uses for a game from its title:
// lowercased, spaces hyphenated, trademark and punctuation characters
// stripped, "&" spelled out. Deterministic; collisions are the
// caller's problem.
func Slug(title string) string {
	return slugReplacer.Replace(strings.ToLower(title))
}
