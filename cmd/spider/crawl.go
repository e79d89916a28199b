package main

import (
	"bytes"
	"fmt"

	"github.com/GBuch1/spider"
	"github.com/GBuch1/spider/crawl"
	"github.com/GBuch1/spider/freq"
	"github.com/GBuch1/spider/fs"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	cfg := deps.Config

	deps.Crawler.Seed(c.Seeds...)

	var trace *debugPrinter
	if cfg.Agent.Debug {
		trace = newDebugPrinter(deps.Stdout)
	}
	progress := func(ev crawl.ProgressEvent) {
		if ev.Type == crawl.ProgressVisit {
			deps.Logger.Debug("visit",
				"uri", ev.Location.URI,
				"pending", ev.Pending,
				"next", nextURI(ev.Next),
			)
		}
		if trace != nil {
			trace.Print(ev)
		}
	}

	var docs bytes.Buffer
	result, err := deps.Crawler.Run(deps.Ctx, &docs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: crawl stopped: %v\n", err)
		return err
	}
	if err := deps.Stores.Err(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spider.ErrorMessage(err))
		return err
	}

	deps.Logger.Info("crawl finished",
		"run", result.RunID,
		"visited", result.Visited,
		"documents", result.Documents,
		"failed", result.Failed,
		"content", crawl.FormatBytes(result.Bytes),
	)

	words, err := freq.Tokenize(&docs)
	if err != nil {
		return err
	}
	if cfg.Options.RemoveStopwords {
		if words, err = freq.RemoveStopwords(words, cfg.Options.StopwordsLang); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", spider.ErrorMessage(err))
			return err
		}
	}

	var report bytes.Buffer
	if err := freq.WriteFrequencies(&report, freq.ComputeTwoGramFrequencies(words)); err != nil {
		return err
	}

	if c.Output == "" {
		_, err := deps.Stdout.Write(report.Bytes())
		return err
	}

	data, err := fs.EncodeText(cfg.Agent.Encoding, report.Bytes())
	if err != nil {
		return err
	}
	if err := fs.WriteFile(c.Output, data); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", c.Output, err)
		return err
	}
	return nil
}

func nextURI(loc spider.Location) string {
	if loc.IsZero() {
		return "none"
	}
	return loc.URI
}
