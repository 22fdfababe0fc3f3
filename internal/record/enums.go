package record

import (
	"fmt"
	"strings"
)

// Platforms lists the practice sites a question can be logged against,
// in display order.
var Platforms = []string{
	"LeetCode",
	"Codeforces",
	"CodeChef",
	"HackerRank",
	"GeeksforGeeks",
	"AtCoder",
}

// Topics lists the problem topics a question can be tagged with,
// in display order.
var Topics = []string{
	"Arrays",
	"Strings",
	"Linked List",
	"Stack",
	"Queue",
	"Trees",
	"Graphs",
	"Dynamic Programming",
	"Greedy",
	"Sliding Window",
	"Binary Search",
	"Recursion",
	"Math",
	"Other",
}

// ParsePlatform resolves s against Platforms, ignoring case and surrounding
// whitespace, and returns the canonical spelling.
func ParsePlatform(s string) (string, error) {
	if p, ok := lookupFold(Platforms, s); ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q (must be one of %v)", ErrUnknownPlatform, s, Platforms)
}

// ParseTopic resolves s against Topics, ignoring case and surrounding
// whitespace, and returns the canonical spelling.
func ParseTopic(s string) (string, error) {
	if t, ok := lookupFold(Topics, s); ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q (must be one of %v)", ErrUnknownTopic, s, Topics)
}

func lookupFold(set []string, s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, v := range set {
		if strings.EqualFold(v, s) {
			return v, true
		}
	}
	return "", false
}
