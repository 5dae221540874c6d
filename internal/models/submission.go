// Package models defines the data structures shared by the validation stages.
package models

import (
	"fmt"
	"strings"
)

// Track identifies the competition track being validated.
type Track int

const (
	// TrackSentence is the sentence-level MT track.
	TrackSentence Track = 1
	// TrackDocument is the document-level MT track.
	TrackDocument Track = 2
)

// ParseTrack converts the CLI track number into a Track.
func ParseTrack(n int) (Track, error) {
	switch n {
	case 1:
		return TrackSentence, nil
	case 2:
		return TrackDocument, nil
	default:
		return 0, fmt.Errorf("you must choose a track: 1 for sentence-level MT, 2 for document-level MT")
	}
}

// String returns the human-readable track name.
func (t Track) String() string {
	switch t {
	case TrackSentence:
		return "sentence-level"
	case TrackDocument:
		return "document-level"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Mode is the terminology mode encoded in a submission filename.
type Mode string

const (
	// ModeNoTerm - no terminology constraints.
	ModeNoTerm Mode = "noterm"
	// ModeRandom - randomly sampled terms.
	ModeRandom Mode = "random"
	// ModeProper - curated ("proper") terms.
	ModeProper Mode = "proper"
)

// Modes lists all terminology modes in their canonical order. Every
// submitted language pair (or year) must be covered in all of them.
var Modes = []Mode{ModeNoTerm, ModeRandom, ModeProper}

// ParseMode reports whether s is a known terminology mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeNoTerm, ModeRandom, ModeProper:
		return Mode(s), true
	default:
		return "", false
	}
}

// NeedsTerms reports whether records in this mode carry a terms mapping.
func (m Mode) NeedsTerms() bool {
	return m == ModeRandom || m == ModeProper
}

// LangPair is a directed language pair token, e.g. "enes" = English→Spanish.
type LangPair string

// Src returns the two-letter source language code.
func (p LangPair) Src() string {
	if len(p) < 2 {
		return string(p)
	}
	return string(p[:2])
}

// Tgt returns the target language code (everything after the source code).
func (p LangPair) Tgt() string {
	if len(p) < 2 {
		return ""
	}
	return string(p[2:])
}

// SubmissionName is a submission filename parsed into its semantic fields.
// All positional token arithmetic lives in the naming package; every other
// stage works with this struct.
type SubmissionName struct {
	Raw    string // filename as submitted
	System string // submitter system name, identical across a batch
	Year   string // document-level track only, empty otherwise
	Pair   LangPair
	Mode   Mode
	Track  Track
}

// String reconstructs the canonical filename for the parsed fields.
func (n SubmissionName) String() string {
	if n.Track == TrackDocument {
		return fmt.Sprintf("%s.%s.%s.%s.jsonl", n.System, n.Year, n.Pair, n.Mode)
	}
	return fmt.Sprintf("%s.%s.%s.jsonl", n.System, n.Pair, n.Mode)
}

// InputSuffix returns the filename with the leading "{system}." stripped.
// The paired organizer input file is the one whose name ends with this
// suffix.
func (n SubmissionName) InputSuffix() string {
	if i := strings.IndexByte(n.Raw, '.'); i >= 0 {
		return n.Raw[i+1:]
	}
	return n.Raw
}
