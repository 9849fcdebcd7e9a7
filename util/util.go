package util

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

func HasAttr(node *html.Node, attrKey string) bool {
	for _, attr := range node.Attr {
		if attr.Key == attrKey {
			return true
		}
	}
	return false
}

// ParsePoints converts score text like "150 points" to its integer value.
// The singular "1 point" form is accepted too.
func ParsePoints(s string) (int, error) {
	s = strings.TrimSuffix(s, " points")
	s = strings.TrimSuffix(s, " point")
	return strconv.Atoi(strings.TrimSpace(s))
}
