package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/GBuch1/spider/crawl"
)

// debugPreviewLen is the number of content characters shown per document.
const debugPreviewLen = 80

// debugPrinter writes a trace of visited locations and the documents they
// produced. It owns the URI and DOC counters of one run.
type debugPrinter struct {
	w    io.Writer
	uris int
	docs int

	// pending is set while the current location has produced no document.
	pending bool
}

func newDebugPrinter(w io.Writer) *debugPrinter {
	return &debugPrinter{w: w}
}

// Print handles one progress event.
func (p *debugPrinter) Print(ev crawl.ProgressEvent) {
	switch ev.Type {
	case crawl.ProgressVisit:
		p.flush()
		p.uris++
		p.pending = true
		fmt.Fprintf(p.w, "┌ URI #%04d | %s has document:\n", p.uris, ev.Location.URI)
	case crawl.ProgressDocument:
		p.pending = false
		p.docs++
		fmt.Fprintf(p.w, "└ DOC #%04d | '%s ...' (FP: %s)\n", p.docs, preview(ev.Document.Content), ev.Document.Fingerprint())
	case crawl.ProgressFinished:
		p.flush()
	}
}

// flush closes the entry of a location that produced no document.
func (p *debugPrinter) flush() {
	if p.pending {
		fmt.Fprintf(p.w, "└%s (none)\n", strings.Repeat("─", 100))
		p.pending = false
	}
}

func preview(content string) string {
	r := []rune(content)
	if len(r) > debugPreviewLen {
		r = r[:debugPreviewLen]
	}
	return strings.ReplaceAll(string(r), "\n", " ")
}
