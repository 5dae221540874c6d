// Package schema validates per-record key sets and value shapes for a
// submission file's terminology mode and track.
package schema

import (
	"fmt"
	"sort"
	"strings"

	"terminology-submission-validator/internal/models"
)

// KeySetError reports a record whose key set differs from the expected one.
// Extra and missing keys both fail.
type KeySetError struct {
	File     string
	Line     int      // zero-based
	Expected []string // canonical order: src, tgt, terms
	Got      []string // sorted
}

func (e *KeySetError) Error() string {
	return fmt.Sprintf("wrong key set in file %s, %d line: expected %s, got %s",
		e.File, e.Line, strings.Join(e.Expected, ", "), strings.Join(e.Got, ", "))
}

// ValueTypeError reports a value whose JSON shape does not match the
// expected one for its key.
type ValueTypeError struct {
	File     string
	Line     int    // zero-based
	What     string // "input sentence", "output sentence", "terminology", "terminology values"
	Expected string
	Got      string
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("wrong dtype of %s in file %s, %d line: expected %s, got %s",
		e.What, e.File, e.Line, e.Expected, e.Got)
}

// Check validates every record of a submission file: exact key set for the
// file's mode, text source and target values, and the track-specific shape
// of every terminology value (single string for the sentence-level track, a
// sequence of strings for the document-level track).
func Check(name models.SubmissionName, recs []models.Record, trk models.Track) error {
	src, tgt := name.Pair.Src(), name.Pair.Tgt()
	expected := []string{src, tgt}
	if name.Mode.NeedsTerms() {
		expected = append(expected, models.TermsKey)
	}

	for i, rec := range recs {
		if err := checkKeys(name.Raw, i, expected, rec.Fields); err != nil {
			return err
		}
		if _, ok := rec.Fields[src].(string); !ok {
			return &ValueTypeError{File: name.Raw, Line: i, What: "input sentence", Expected: "str", Got: shapeOf(rec.Fields[src])}
		}
		if _, ok := rec.Fields[tgt].(string); !ok {
			return &ValueTypeError{File: name.Raw, Line: i, What: "output sentence", Expected: "str", Got: shapeOf(rec.Fields[tgt])}
		}
		if !name.Mode.NeedsTerms() {
			continue
		}
		terms, ok := rec.Fields[models.TermsKey].(map[string]any)
		if !ok {
			return &ValueTypeError{File: name.Raw, Line: i, What: "terminology", Expected: "dict", Got: shapeOf(rec.Fields[models.TermsKey])}
		}
		if err := checkTerms(name.Raw, i, terms, trk); err != nil {
			return err
		}
	}
	return nil
}

func checkKeys(file string, line int, expected []string, fields map[string]any) error {
	ok := len(fields) == len(expected)
	if ok {
		for _, k := range expected {
			if _, present := fields[k]; !present {
				ok = false
				break
			}
		}
	}
	if ok {
		return nil
	}
	got := make([]string, 0, len(fields))
	for k := range fields {
		got = append(got, k)
	}
	sort.Strings(got)
	return &KeySetError{File: file, Line: line, Expected: expected, Got: got}
}

// checkTerms validates every terminology value against the track shape.
// Keys are visited in sorted order so the first reported offender is
// deterministic.
func checkTerms(file string, line int, terms map[string]any, trk models.Track) error {
	keys := make([]string, 0, len(terms))
	for k := range terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := terms[k]
		switch trk {
		case models.TrackSentence:
			if _, ok := v.(string); !ok {
				return &ValueTypeError{File: file, Line: line, What: "terminology values", Expected: "str", Got: shapeOf(v)}
			}
		case models.TrackDocument:
			seq, ok := v.([]any)
			if !ok {
				return &ValueTypeError{File: file, Line: line, What: "terminology values", Expected: "list(str)", Got: shapeOf(v)}
			}
			for _, elem := range seq {
				if _, ok := elem.(string); !ok {
					return &ValueTypeError{File: file, Line: line, What: "terminology values", Expected: "list(str)", Got: "list(" + shapeOf(elem) + ")"}
				}
			}
		}
	}
	return nil
}

// shapeOf names the JSON shape of a decoded value for error messages.
func shapeOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "str"
	case bool:
		return "bool"
	case float64:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "dict"
	default:
		return fmt.Sprintf("%T", v)
	}
}
