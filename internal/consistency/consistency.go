// Package consistency verifies that every submitted output file aligns with
// its organizer-provided input file: same record count, identical source
// sentences, identical terminology mappings.
package consistency

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"

	"terminology-submission-validator/internal/models"
)

// MissingInputError reports that no input file matches an output filename.
type MissingInputError struct {
	Suffix string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("no input file matching %s", e.Suffix)
}

// CountMismatchError reports a record-count difference between an output
// file and its paired input file.
type CountMismatchError struct {
	File     string
	Expected int // input record count
	Got      int // output record count
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("inconsistent number of lines in %s: expected %d, got %d", e.File, e.Expected, e.Got)
}

// Error reports a source-sentence or terminology mismatch at a record index.
type Error struct {
	File string
	Line int // zero-based
}

func (e *Error) Error() string {
	return fmt.Sprintf("inconsistent input data (src sentences or terms), file %s, line %d", e.File, e.Line)
}

// PairInput locates the input file for an output: the output name with its
// "{system}." prefix stripped must be a suffix of the input name. Inputs
// carry no submitter prefix, but may carry a task prefix of their own.
func PairInput(name models.SubmissionName, inputNames []string) (string, bool) {
	suffix := name.InputSuffix()
	for _, f := range inputNames {
		if strings.HasSuffix(f, suffix) {
			return f, true
		}
	}
	return "", false
}

// Check compares an output file's records against its input file's records.
// The source-language field must be character-for-character identical and
// the normalized terms mappings deeply equal at every index.
func Check(name models.SubmissionName, outputs, inputs []models.Record) error {
	if len(inputs) != len(outputs) {
		return &CountMismatchError{File: name.Raw, Expected: len(inputs), Got: len(outputs)}
	}
	src := name.Pair.Src()
	for i := range outputs {
		if !cmp.Equal(inputs[i].Source(src), outputs[i].Source(src)) {
			return &Error{File: name.Raw, Line: i}
		}
		if !cmp.Equal(inputs[i].Terms, outputs[i].Terms) {
			return &Error{File: name.Raw, Line: i}
		}
	}
	return nil
}
