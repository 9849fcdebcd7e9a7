package hn

import (
	"hnews/util"

	"github.com/yhat/scrape"
	"golang.org/x/net/html"
)

// The front page lays out each story as two sibling table rows: one
// holding the titleline span, the next holding the subtext cell.
var (
	titleLine = scrape.ByClass("titleline")
	subText   = scrape.ByClass("subtext")
	scoreSpan = scrape.ByClass("score")
)

func storyAnchor(n *html.Node) bool {
	return n.Data == "a" && util.HasAttr(n, "href")
}
