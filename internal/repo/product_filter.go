package repo

import "strings"

// matchesFilter reports whether name contains filter, ignoring case.
// An empty filter matches every name.
func matchesFilter(name, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns filter into a LIKE pattern that treats %, _ and \ literally.
// Use it with ESCAPE '\'.
func likePattern(filter string) string {
	return "%" + likeEscaper.Replace(filter) + "%"
}
