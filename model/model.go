package model

// Story is one front page entry that cleared the score threshold.
type Story struct {
	Title string
	Href  string
	Score int
}
