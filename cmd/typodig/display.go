// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/siemens/typodig/pool"
	"github.com/siemens/typodig/types"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// progressInterval is the interval between progress line updates.
const progressInterval = 100 * time.Millisecond

// spinnerPhases is yet another (braille) spinner.
var spinnerPhases = []string{"⠉", "⠘", "⠰", "⠤", "⠆", "⠃"}

// progress renders a live progress line, based on the resolution pool's
// lookup counters.
type progress struct {
	term   *uilive.Writer
	styled bool
	total  int
	stats  func() pool.Stats

	mu      sync.Mutex
	phase   int
	done    chan struct{}
	stopped chan struct{}
}

// newProgress returns a new progress line renderer writing to the specified
// io.Writer, for the specified total number of candidate domains. Later call
// the Start method to render the progress line every so often, and Stop to
// render the final state.
func newProgress(w io.Writer, total int, stats func() pool.Stats) *progress {
	// Dunno what uilive's background updating mode using Start() is good for?
	// It may trigger anytime with the rendering into the buffer not yet
	// complete, thus making the terminal output very flickery. So we avoid
	// Start() and instead trigger an explicit flush to the terminal after
	// having completed the rendering.
	term := uilive.New()
	term.Out = w
	return &progress{
		term:    term,
		styled:  isStyled(w),
		total:   total,
		stats:   stats,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Bypass returns an io.Writer for writing lines above the progress line.
func (p *progress) Bypass() io.Writer {
	return p.term.Bypass()
}

// Start rendering the progress line in the background.
func (p *progress) Start(interval time.Duration) {
	go func() {
		defer close(p.stopped)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			p.render(false)
			select {
			case <-ticker.C:
			case <-p.done:
				return
			}
		}
	}()
}

// Stop rendering in the background and render the final progress.
func (p *progress) Stop() {
	close(p.done)
	<-p.stopped
	p.render(true)
}

// render the current progress and flush it to the terminal.
func (p *progress) render(final bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	stats := p.stats()
	spinner := "✔"
	if !final {
		spinner = spinnerPhases[p.phase]
		p.phase = (p.phase + 1) % len(spinnerPhases)
	}
	if p.styled {
		spinner = progressStyle.Styled(spinner)
	}
	fmt.Fprintf(p.term, "%s dug %d/%d candidate domains, %d resolved\n",
		spinner, stats.Done(), p.total, stats.Resolved)
	_ = p.term.Flush()
}

// renderResult renders a resolved candidate domain in the form of
// "domain : address address...", optionally styled.
func renderResult(result types.Result, styled bool) string {
	if !styled {
		return result.String()
	}
	return domainStyle.Styled(strings.TrimSuffix(result.FQDN, ".")) +
		" : " + addressStyle.Styled(strings.Join(result.Addresses, " "))
}

// isTerminal returns true if the specified io.Writer is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// isStyled returns true if output to the specified io.Writer should be styled,
// that is, it is a terminal and the user doesn't object to colors.
func isStyled(w io.Writer) bool {
	return isTerminal(w) && termenv.EnvColorProfile() != termenv.Ascii
}
