package hn

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"hnews/model"
	"hnews/util"

	"github.com/yhat/scrape"
	"golang.org/x/net/html"
)

// FrontPageURL is the page the ranking is built from.
const FrontPageURL = "https://news.ycombinator.com/"

// ScoreThreshold is the minimum score a story must exceed to be kept.
const ScoreThreshold = 100

var client = &http.Client{Timeout: 15 * time.Second}

// Fetch performs one GET against url and parses the body into an HTML
// node tree. Transport failures and non-2xx responses are errors.
func Fetch(url string) (*html.Node, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}
	root, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return root, nil
}

// ExtractScore reads the score out of a subtext node. A subtext with no
// score element counts as 0; score text that is not "<n> points" is an
// error.
func ExtractScore(subtext *html.Node) (int, error) {
	vote, ok := scrape.Find(subtext, scoreSpan)
	if !ok {
		return 0, nil
	}
	return util.ParsePoints(scrape.Text(vote))
}

// CreateStory builds a Story from a titleline node and its subtext node.
// It returns nil when the titleline holds no anchor with an href, or when
// the score does not exceed ScoreThreshold.
func CreateStory(link, subtext *html.Node) (*model.Story, error) {
	a, ok := scrape.Find(link, storyAnchor)
	if !ok {
		return nil, nil
	}
	score, err := ExtractScore(subtext)
	if err != nil {
		return nil, err
	}
	if score <= ScoreThreshold {
		return nil, nil
	}
	return &model.Story{
		Title: scrape.Text(a),
		Href:  scrape.Attr(a, "href"),
		Score: score,
	}, nil
}

// BuildRanking pairs titleline nodes with subtext nodes by position,
// keeps the stories that clear the threshold and sorts them by score
// descending. Equal scores keep their page order. The two lists carry no
// shared story id, so a length mismatch means the pairing is off and is
// an error.
func BuildRanking(links, subtexts []*html.Node) ([]*model.Story, error) {
	if len(links) != len(subtexts) {
		return nil, fmt.Errorf("hn: %d titleline nodes but %d subtext nodes", len(links), len(subtexts))
	}
	var stories []*model.Story
	for i, link := range links {
		story, err := CreateStory(link, subtexts[i])
		if err != nil {
			return nil, err
		}
		if story != nil {
			stories = append(stories, story)
		}
	}
	sort.SliceStable(stories, func(i, j int) bool {
		return stories[i].Score > stories[j].Score
	})
	return stories, nil
}

// StoriesFromNode builds the ranking from an already parsed page.
func StoriesFromNode(root *html.Node) ([]*model.Story, error) {
	links := scrape.FindAll(root, titleLine)
	subtexts := scrape.FindAll(root, subText)
	return BuildRanking(links, subtexts)
}

// TopStories fetches the front page at url and returns its ranking.
func TopStories(url string) ([]*model.Story, error) {
	root, err := Fetch(url)
	if err != nil {
		return nil, err
	}
	return StoriesFromNode(root)
}
