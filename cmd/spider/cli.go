package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/GBuch1/spider"
	"github.com/GBuch1/spider/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Config  *spider.Config
	Stores  *Stores
	Crawler *crawl.Crawler
}

// CrawlCmd runs a crawl and writes the two-gram report.
type CrawlCmd struct {
	Seeds []spider.Location

	// Output is the report path. Empty writes to stdout.
	Output string
}
