// Package completeness checks that a submission batch carries a single
// system name and covers every required language pair / year × terminology
// mode combination.
package completeness

import (
	"fmt"
	"sort"
	"strings"

	"terminology-submission-validator/internal/models"
	"terminology-submission-validator/internal/track"
)

// SystemNameConflictError reports more than one distinct system-name prefix
// in the same output directory.
type SystemNameConflictError struct {
	Names []string // sorted
}

func (e *SystemNameConflictError) Error() string {
	return fmt.Sprintf("inconsistent system naming: %s", strings.Join(e.Names, ", "))
}

// MissingFileError reports a required file absent from the submission.
type MissingFileError struct {
	File string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s missing in submission", e.File)
}

// Check validates the submitted filename set. Pairs outside the schedule
// (sentence-level) and years outside the schedule (document-level)
// contribute no expectations; files submitted for a scheduled pair or year
// must cover all three terminology modes.
func Check(names []models.SubmissionName, trk models.Track, sched track.Schedule) error {
	systems := make(map[string]struct{})
	submitted := make(map[string]struct{}, len(names))
	for _, n := range names {
		systems[n.System] = struct{}{}
		submitted[n.Raw] = struct{}{}
	}
	if len(systems) > 1 {
		conflict := make([]string, 0, len(systems))
		for s := range systems {
			conflict = append(conflict, s)
		}
		sort.Strings(conflict)
		return &SystemNameConflictError{Names: conflict}
	}
	if len(names) == 0 {
		return nil
	}
	system := names[0].System

	for _, expected := range expectedNames(names, trk, sched, system) {
		if _, ok := submitted[expected.Raw]; !ok {
			return &MissingFileError{File: expected.Raw}
		}
	}
	return nil
}

// expectedNames derives the full expected filename set from what was
// actually submitted, in deterministic (schedule, then mode) order.
func expectedNames(names []models.SubmissionName, trk models.Track, sched track.Schedule, system string) []models.SubmissionName {
	var expected []models.SubmissionName

	add := func(year string, pair models.LangPair) {
		for _, mode := range models.Modes {
			n := models.SubmissionName{
				System: system,
				Year:   year,
				Pair:   pair,
				Mode:   mode,
				Track:  trk,
			}
			n.Raw = n.String()
			expected = append(expected, n)
		}
	}

	switch trk {
	case models.TrackSentence:
		seen := make(map[models.LangPair]struct{})
		for _, n := range names {
			seen[n.Pair] = struct{}{}
		}
		for _, pair := range sched.SentencePairs {
			if _, ok := seen[pair]; ok {
				add("", pair)
			}
		}
	case models.TrackDocument:
		seen := make(map[string]struct{})
		for _, n := range names {
			seen[n.Year] = struct{}{}
		}
		for _, year := range sched.Years() {
			if _, ok := seen[year]; !ok {
				continue
			}
			pair, _ := sched.YearPair(year)
			add(year, pair)
		}
	}
	return expected
}
