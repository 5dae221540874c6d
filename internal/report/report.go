// Package report emits per-stage progress for a validation run.
//
// The banner lines on stdout are the tool's output contract; task scripts
// match on them verbatim. The same events are mirrored into the structured
// log for diagnostics.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Stages is the number of pipeline stages reported.
const Stages = 3

// Reporter writes stage banners to w and structured events to the logger.
type Reporter struct {
	w     io.Writer
	log   zerolog.Logger
	stage int
	begun time.Time
}

// New creates a Reporter writing banners to w.
func New(w io.Writer, logger zerolog.Logger) *Reporter {
	return &Reporter{
		w:   w,
		log: logger.With().Str("component", "report").Logger(),
	}
}

// Stage announces the start of a pipeline stage.
func (r *Reporter) Stage(num int, banner string) {
	r.stage = num
	r.begun = time.Now()
	fmt.Fprintf(r.w, "Test %d/%d: %s...\n", num, Stages, banner)
	r.log.Info().Int("stage", num).Str("check", banner).Msg("stage started")
}

// Done announces the successful completion of the current stage.
func (r *Reporter) Done(label string) {
	fmt.Fprintf(r.w, "%s: DONE\n", label)
	r.log.Info().
		Int("stage", r.stage).
		Dur("elapsed", time.Since(r.begun)).
		Msg("stage completed")
}

// Success announces that the whole run passed.
func (r *Reporter) Success() {
	// Matched verbatim by task scripts, misspelling included.
	fmt.Fprintln(r.w, "All entries formated correctly. The files are ready for submission.")
	r.log.Info().Msg("validation succeeded")
}
