// Package naming parses submission filenames into their semantic fields and
// validates them against the per-track grammar.
//
// Grammar:
//
//	sentence-level:  {system}.{srctgt}.{mode}.jsonl
//	document-level:  {system}.{year}.{srctgt}.{mode}.jsonl
//
// Only token count, the jsonl suffix, and the mode token are checked here.
// Language-pair and year content is validated by the completeness stage.
package naming

import (
	"fmt"
	"strings"

	"terminology-submission-validator/internal/models"
)

const (
	patternSentence = "sysname.lang_pair.mode.jsonl"
	patternDocument = "sysname.year.lang_pair.mode.jsonl"
)

// Error reports a filename that does not match the track grammar.
type Error struct {
	File    string
	Pattern string
}

func (e *Error) Error() string {
	return fmt.Sprintf("wrong naming of file %s, has to be %s", e.File, e.Pattern)
}

// Parse splits fname on "." and validates it against the grammar for trk.
func Parse(fname string, trk models.Track) (models.SubmissionName, error) {
	parts := strings.Split(fname, ".")

	want := 4
	pattern := patternSentence
	if trk == models.TrackDocument {
		want = 5
		pattern = patternDocument
	}
	fail := &Error{File: fname, Pattern: pattern}

	if len(parts) != want {
		return models.SubmissionName{}, fail
	}
	if parts[len(parts)-1] != "jsonl" {
		return models.SubmissionName{}, fail
	}
	mode, ok := models.ParseMode(parts[len(parts)-2])
	if !ok {
		return models.SubmissionName{}, fail
	}

	name := models.SubmissionName{
		Raw:    fname,
		System: parts[0],
		Pair:   models.LangPair(parts[len(parts)-3]),
		Mode:   mode,
		Track:  trk,
	}
	if trk == models.TrackDocument {
		name.Year = parts[1]
	}
	return name, nil
}
