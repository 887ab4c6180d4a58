package git

import (
	"regexp"
	"strconv"
)

var (
	insertionsPattern = regexp.MustCompile(`(\d+) insertions?\(\+\)`)
	deletionsPattern  = regexp.MustCompile(`(\d+) deletions?\(-\)`)
)

// ParseShortstat extracts insertion and deletion counts from a
// `git diff --shortstat` summary line such as
// " 3 files changed, 42 insertions(+), 7 deletions(-)".
// A missing count parses as 0; the two are independent (a pure-deletion
// commit has no insertions clause at all).
func ParseShortstat(s string) (insertions, deletions int) {
	if m := insertionsPattern.FindStringSubmatch(s); m != nil {
		insertions, _ = strconv.Atoi(m[1])
	}
	if m := deletionsPattern.FindStringSubmatch(s); m != nil {
		deletions, _ = strconv.Atoi(m[1])
	}
	return insertions, deletions
}
