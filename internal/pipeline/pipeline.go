// Package pipeline runs the three validation stages in order: filenames,
// consistency with source data, per-record schema. Each stage is a complete
// pass over all files; the first violation anywhere aborts the run.
package pipeline

import (
	"context"
	"errors"
	"io/fs"

	"github.com/rs/zerolog"

	"terminology-submission-validator/internal/completeness"
	"terminology-submission-validator/internal/consistency"
	"terminology-submission-validator/internal/jsonl"
	"terminology-submission-validator/internal/models"
	"terminology-submission-validator/internal/naming"
	"terminology-submission-validator/internal/report"
	"terminology-submission-validator/internal/schema"
	"terminology-submission-validator/internal/track"
)

// ErrNoSubmissionFiles is returned when the outputs directory holds no
// .jsonl files at all.
var ErrNoSubmissionFiles = errors.New("no .jsonl files found in submission")

// Options configures a Runner.
type Options struct {
	Outputs  fs.FS
	Inputs   fs.FS
	Track    models.Track
	Schedule track.Schedule
	Reporter *report.Reporter
	Logger   zerolog.Logger
}

// Runner executes the validation pipeline for one submission batch.
type Runner struct {
	outputs fs.FS
	inputs  fs.FS
	track   models.Track
	sched   track.Schedule
	rep     *report.Reporter
	log     zerolog.Logger

	// Populated by the filenames stage and reused by the later stages so
	// every output file is read and decoded exactly once.
	names []models.SubmissionName
	cache map[string][]models.Record

	records int
}

// New creates a Runner for one validation run.
func New(opts Options) *Runner {
	return &Runner{
		outputs: opts.Outputs,
		inputs:  opts.Inputs,
		track:   opts.Track,
		sched:   opts.Schedule,
		rep:     opts.Reporter,
		log:     opts.Logger.With().Str("component", "pipeline").Logger(),
		cache:   make(map[string][]models.Record),
	}
}

// Run executes the three stages. The first failure aborts the run and is
// returned unwrapped so callers can inspect the concrete error type.
func (r *Runner) Run(ctx context.Context) error {
	stages := []struct {
		banner string
		label  string
		check  func() error
	}{
		{"checking filenames consistency", "CHECK FILENAMES", r.checkFilenames},
		{"checking consistency with source data", "CHECK CONSISTENCY WITH SOURCE DATA", r.checkConsistency},
		{"checking validity of data points", "CHECK VALIDITY OF DATA POINTS", r.checkSchema},
	}

	for i, stage := range stages {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.rep.Stage(i+1, stage.banner)
		if err := stage.check(); err != nil {
			return err
		}
		r.rep.Done(stage.label)
	}

	r.log.Info().
		Int("files", len(r.names)).
		Int("records", r.records).
		Msg("run summary")
	r.rep.Success()
	return nil
}

// checkFilenames is stage 1: naming grammar, single system name, matrix
// completeness, and JSON Lines well-formedness of every output file.
func (r *Runner) checkFilenames() error {
	files, err := jsonl.List(r.outputs)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return ErrNoSubmissionFiles
	}

	r.names = make([]models.SubmissionName, 0, len(files))
	for _, f := range files {
		name, err := naming.Parse(f, r.track)
		if err != nil {
			return err
		}
		r.names = append(r.names, name)
	}

	if err := completeness.Check(r.names, r.track, r.sched); err != nil {
		return err
	}

	for _, n := range r.names {
		recs, err := jsonl.ReadAll(r.outputs, n.Raw)
		if err != nil {
			return err
		}
		r.cache[n.Raw] = recs
		r.records += len(recs)
	}
	return nil
}

// checkConsistency is stage 2: pair every output with its input file and
// compare record counts, source sentences, and terminology mappings.
func (r *Runner) checkConsistency() error {
	inputFiles, err := jsonl.List(r.inputs)
	if err != nil {
		return err
	}

	for _, n := range r.names {
		inputName, ok := consistency.PairInput(n, inputFiles)
		if !ok {
			return &consistency.MissingInputError{Suffix: n.InputSuffix()}
		}
		inputs, err := jsonl.ReadAll(r.inputs, inputName)
		if err != nil {
			return err
		}
		if err := consistency.Check(n, r.cache[n.Raw], inputs); err != nil {
			return err
		}
		r.log.Debug().
			Str("output", n.Raw).
			Str("input", inputName).
			Int("records", len(inputs)).
			Msg("consistency verified")
	}
	return nil
}

// checkSchema is stage 3: per-record key sets and value shapes.
func (r *Runner) checkSchema() error {
	for _, n := range r.names {
		if err := schema.Check(n, r.cache[n.Raw], r.track); err != nil {
			return err
		}
	}
	return nil
}
