package main

import (
	"flag"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"time"

	"hnews/hn"

	"github.com/julienschmidt/httprouter"
	"github.com/kr/pretty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// run performs one pass of the pipeline and dumps the ranking to out.
func run(url string, out io.Writer) error {
	stories, err := hn.TopStories(url)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%# v\n", pretty.Formatter(stories))
	return err
}

func getStories(url string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		stories, err := hn.TopStories(url)
		if err != nil {
			log.Error().Err(err).Msg("building ranking failed")
			http.Error(w, "front page unavailable", http.StatusBadGateway)
			return
		}
		t := template.New("stories.template")
		tem, err := t.ParseFiles("stories.template")
		if err != nil {
			panic(err)
		}
		err = tem.Execute(w, stories)
		if err != nil {
			panic(err)
		}
	}
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		url   string
		serve string
	)
	flag.StringVar(&url, "url", hn.FrontPageURL, "Front page URL to build the ranking from")
	flag.StringVar(&serve, "serve", "", "Serve the ranking over HTTP on this address instead of printing it once")
	flag.Parse()

	if serve != "" {
		router := httprouter.New()
		router.GET("/", getStories(url))
		log.Info().Str("addr", serve).Msg("serving ranking")
		if err := http.ListenAndServe(serve, router); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
		return
	}

	if err := run(url, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("building ranking failed")
	}
}
