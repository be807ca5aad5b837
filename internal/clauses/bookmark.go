package clauses

import (
	"fmt"
	"slices"
)

// UniqueBookmarkName returns title, or "title (n)" for the smallest n >= 1 not
// already in existing. The editor names the bookmark around each inserted
// clause this way so that the same clause can be inserted more than once.
func UniqueBookmarkName(existing []string, title string) string {
	name := title
	for n := 1; slices.Contains(existing, name); n++ {
		name = fmt.Sprintf("%s (%d)", title, n)
	}
	return name
}
