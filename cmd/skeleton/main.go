// Command skeleton generates a well-formed submission skeleton from an
// inputs directory: source sentences and terms are copied verbatim, the
// target field is left empty for the system to fill in. The result passes
// the filename and consistency checks by construction.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"terminology-submission-validator/internal/jsonl"
	"terminology-submission-validator/internal/models"
)

func main() {
	var (
		flagTrack  int
		flagInputs string
		flagSystem string
		flagOut    string
	)
	flag.IntVar(&flagTrack, "t", 0, "competition track: 1 or 2")
	flag.StringVar(&flagInputs, "i", "", "directory with the organizer-provided input files")
	flag.StringVar(&flagSystem, "s", "", "system name to prefix the generated files with")
	flag.StringVar(&flagOut, "o", "", "directory to write the skeleton files into")
	flag.Parse()

	trk, err := models.ParseTrack(flagTrack)
	if err != nil {
		log.Fatal(err)
	}
	if flagInputs == "" || flagSystem == "" || flagOut == "" {
		log.Fatal("flags -i, -s and -o are all required")
	}
	if strings.Contains(flagSystem, ".") {
		log.Fatalf("system name %q must not contain dots", flagSystem)
	}

	if err := os.MkdirAll(flagOut, 0o755); err != nil {
		log.Fatalf("create output directory: %v", err)
	}

	inputs := os.DirFS(flagInputs)
	files, err := jsonl.List(inputs)
	if err != nil {
		log.Fatalf("list inputs: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("no .jsonl files in %s", flagInputs)
	}

	for _, f := range files {
		outName, err := skeletonName(f, flagSystem, trk)
		if err != nil {
			log.Fatal(err)
		}
		recs, err := jsonl.ReadAll(inputs, f)
		if err != nil {
			log.Fatalf("read %s: %v", f, err)
		}
		if err := writeSkeleton(filepath.Join(flagOut, outName.Raw), outName, recs); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s (%d records)", outName.Raw, len(recs))
	}
}

// skeletonName derives the submission filename for an input file. Inputs
// may carry a task prefix of their own; only the trailing
// {year.}pair.mode.jsonl tokens are kept.
func skeletonName(input, system string, trk models.Track) (models.SubmissionName, error) {
	parts := strings.Split(input, ".")
	keep := 3 // pair, mode, jsonl
	if trk == models.TrackDocument {
		keep = 4
	}
	if len(parts) < keep {
		return models.SubmissionName{}, &nameError{input}
	}
	parts = parts[len(parts)-keep:]

	mode, ok := models.ParseMode(parts[len(parts)-2])
	if !ok || parts[len(parts)-1] != "jsonl" {
		return models.SubmissionName{}, &nameError{input}
	}
	name := models.SubmissionName{
		System: system,
		Pair:   models.LangPair(parts[len(parts)-3]),
		Mode:   mode,
		Track:  trk,
	}
	if trk == models.TrackDocument {
		name.Year = parts[0]
	}
	name.Raw = name.String()
	return name, nil
}

type nameError struct{ file string }

func (e *nameError) Error() string {
	return "input file " + e.file + " does not end in {year.}pair.mode.jsonl"
}

// writeSkeleton writes one skeleton record per input record.
func writeSkeleton(path string, name models.SubmissionName, recs []models.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	src, tgt := name.Pair.Src(), name.Pair.Tgt()
	for _, rec := range recs {
		out := map[string]any{
			src: rec.Source(src),
			tgt: "",
		}
		if name.Mode.NeedsTerms() {
			out[models.TermsKey] = rec.Terms
		}
		line, err := json.Marshal(out)
		if err != nil {
			return err
		}
		if _, err := w.Write(append(line, '\n')); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
