package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminology-submission-validator/internal/completeness"
	"terminology-submission-validator/internal/consistency"
	"terminology-submission-validator/internal/jsonl"
	"terminology-submission-validator/internal/models"
	"terminology-submission-validator/internal/naming"
	"terminology-submission-validator/internal/report"
	"terminology-submission-validator/internal/schema"
	"terminology-submission-validator/internal/track"
)

func file(lines ...string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(strings.Join(lines, "\n") + "\n")}
}

// sentenceFixture builds a complete, valid enes submission and its inputs.
func sentenceFixture() (fstest.MapFS, fstest.MapFS) {
	outputs := fstest.MapFS{
		"sys.enes.noterm.jsonl": file(
			`{"en":"Hello","es":"Hola"}`,
			`{"en":"Bye","es":"Adiós"}`,
		),
		"sys.enes.random.jsonl": file(
			`{"en":"Hello","es":"Hola","terms":{"cat":"gato"}}`,
			`{"en":"Bye","es":"Adiós","terms":{}}`,
		),
		"sys.enes.proper.jsonl": file(
			`{"en":"Hello","es":"Hola","terms":{"dog":"perro"}}`,
			`{"en":"Bye","es":"Adiós","terms":{}}`,
		),
	}
	inputs := fstest.MapFS{
		"enes.noterm.jsonl": file(
			`{"en":"Hello"}`,
			`{"en":"Bye"}`,
		),
		"enes.random.jsonl": file(
			`{"en":"Hello","terms":{"cat":"gato"}}`,
			`{"en":"Bye","terms":{}}`,
		),
		"enes.proper.jsonl": file(
			`{"en":"Hello","terms":{"dog":"perro"}}`,
			`{"en":"Bye","terms":{}}`,
		),
	}
	return outputs, inputs
}

// documentFixture builds a valid single-year document-track submission.
func documentFixture() (fstest.MapFS, fstest.MapFS) {
	outputs := fstest.MapFS{
		"sys.2016.zhen.noterm.jsonl": file(
			`{"zh":"你好","en":"hello"}`,
		),
		"sys.2016.zhen.random.jsonl": file(
			`{"zh":"你好","en":"hello","terms":{"你好":["hello","hi"]}}`,
		),
		"sys.2016.zhen.proper.jsonl": file(
			`{"zh":"你好","en":"hello","terms":{"你好":["hello"]}}`,
		),
	}
	inputs := fstest.MapFS{
		"2016.zhen.noterm.jsonl": file(
			`{"zh":"你好"}`,
		),
		"2016.zhen.random.jsonl": file(
			`{"zh":"你好","terms":{"你好":["hello","hi"]}}`,
		),
		"2016.zhen.proper.jsonl": file(
			`{"zh":"你好","terms":{"你好":["hello"]}}`,
		),
	}
	return outputs, inputs
}

func run(t *testing.T, outputs, inputs fstest.MapFS, trk models.Track) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	r := New(Options{
		Outputs:  outputs,
		Inputs:   inputs,
		Track:    trk,
		Schedule: track.Default(),
		Reporter: report.New(&buf, zerolog.Nop()),
		Logger:   zerolog.Nop(),
	})
	err := r.Run(context.Background())
	return buf.String(), err
}

func TestRun_SentenceSuccess(t *testing.T) {
	outputs, inputs := sentenceFixture()
	out, err := run(t, outputs, inputs, models.TrackSentence)
	require.NoError(t, err)

	for _, want := range []string{
		"Test 1/3: checking filenames consistency...",
		"CHECK FILENAMES: DONE",
		"Test 2/3: checking consistency with source data...",
		"CHECK CONSISTENCY WITH SOURCE DATA: DONE",
		"Test 3/3: checking validity of data points...",
		"CHECK VALIDITY OF DATA POINTS: DONE",
		"All entries formated correctly. The files are ready for submission.",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRun_DocumentSuccess(t *testing.T) {
	outputs, inputs := documentFixture()
	_, err := run(t, outputs, inputs, models.TrackDocument)
	require.NoError(t, err)
}

func TestRun_EmptyOutputs(t *testing.T) {
	_, inputs := sentenceFixture()
	_, err := run(t, fstest.MapFS{"readme.txt": file("hi")}, inputs, models.TrackSentence)
	assert.ErrorIs(t, err, ErrNoSubmissionFiles)
}

func TestRun_NamingError(t *testing.T) {
	outputs, inputs := sentenceFixture()
	outputs["sys.enes.jsonl"] = file(`{"en":"x","es":"y"}`)
	out, err := run(t, outputs, inputs, models.TrackSentence)
	var nerr *naming.Error
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "sys.enes.jsonl", nerr.File)
	// Short-circuit: the first stage never completed.
	assert.NotContains(t, out, "CHECK FILENAMES: DONE")
}

func TestRun_MissingFile(t *testing.T) {
	outputs, inputs := sentenceFixture()
	delete(outputs, "sys.enes.proper.jsonl")
	_, err := run(t, outputs, inputs, models.TrackSentence)
	var missing *completeness.MissingFileError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "sys.enes.proper.jsonl", missing.File)
}

func TestRun_SystemNameConflict(t *testing.T) {
	outputs, inputs := sentenceFixture()
	outputs["other.enes.noterm.jsonl"] = file(`{"en":"Hello","es":"Hola"}`, `{"en":"Bye","es":"Adiós"}`)
	_, err := run(t, outputs, inputs, models.TrackSentence)
	var conflict *completeness.SystemNameConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"other", "sys"}, conflict.Names)
}

func TestRun_FormatError(t *testing.T) {
	outputs, inputs := sentenceFixture()
	outputs["sys.enes.noterm.jsonl"] = file(`{"en":"Hello","es":"Hola"}`, `{broken`)
	_, err := run(t, outputs, inputs, models.TrackSentence)
	var ferr *jsonl.FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "sys.enes.noterm.jsonl", ferr.File)
}

func TestRun_MissingInput(t *testing.T) {
	outputs, inputs := sentenceFixture()
	delete(inputs, "enes.random.jsonl")
	_, err := run(t, outputs, inputs, models.TrackSentence)
	var missing *consistency.MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.EqualError(t, err, "no input file matching enes.random.jsonl")
}

func TestRun_CountMismatch(t *testing.T) {
	outputs, inputs := documentFixture()
	// Input has 2 records, submission has 3.
	inputs["2016.zhen.random.jsonl"] = file(
		`{"zh":"你好","terms":{}}`,
		`{"zh":"再见","terms":{}}`,
	)
	outputs["sys.2016.zhen.random.jsonl"] = file(
		`{"zh":"你好","en":"hello","terms":{}}`,
		`{"zh":"再见","en":"bye","terms":{}}`,
		`{"zh":"谢谢","en":"thanks","terms":{}}`,
	)
	_, err := run(t, outputs, inputs, models.TrackDocument)
	var count *consistency.CountMismatchError
	require.ErrorAs(t, err, &count)
	assert.Equal(t, 2, count.Expected)
	assert.Equal(t, 3, count.Got)
}

func TestRun_ConsistencyError(t *testing.T) {
	outputs, inputs := sentenceFixture()
	outputs["sys.enes.random.jsonl"] = file(
		`{"en":"Hello","es":"Hola","terms":{"cat":"gato"}}`,
		`{"en":"Adieu","es":"Adiós","terms":{}}`, // source rewritten
	)
	out, err := run(t, outputs, inputs, models.TrackSentence)
	var cerr *consistency.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "sys.enes.random.jsonl", cerr.File)
	assert.Equal(t, 1, cerr.Line)
	// Stage 1 completed before the failure.
	assert.Contains(t, out, "CHECK FILENAMES: DONE")
	assert.NotContains(t, out, "CHECK CONSISTENCY WITH SOURCE DATA: DONE")
}

func TestRun_SchemaError(t *testing.T) {
	outputs, inputs := sentenceFixture()
	// Record consistent with the input but missing the target key: stages 1
	// and 2 pass, stage 3 reports the key set.
	outputs["sys.enes.proper.jsonl"] = file(
		`{"en":"Hello","terms":{"dog":"perro"}}`,
		`{"en":"Bye","es":"Adiós","terms":{}}`,
	)
	out, err := run(t, outputs, inputs, models.TrackSentence)
	var kerr *schema.KeySetError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, 0, kerr.Line)
	assert.EqualError(t, err, "wrong key set in file sys.enes.proper.jsonl, 0 line: expected en, es, terms, got en, terms")
	assert.Contains(t, out, "CHECK CONSISTENCY WITH SOURCE DATA: DONE")
}

func TestRun_TermsShapeError(t *testing.T) {
	outputs, inputs := documentFixture()
	// A single string where the document track requires a sequence. The
	// input must carry the same shape so stage 2 passes and stage 3 reports.
	inputs["2016.zhen.proper.jsonl"] = file(`{"zh":"你好","terms":{"你好":"hello"}}`)
	outputs["sys.2016.zhen.proper.jsonl"] = file(`{"zh":"你好","en":"hello","terms":{"你好":"hello"}}`)
	_, err := run(t, outputs, inputs, models.TrackDocument)
	var verr *schema.ValueTypeError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, verr.Line)
	assert.Equal(t, "list(str)", verr.Expected)
}

func TestRun_Cancelled(t *testing.T) {
	outputs, inputs := sentenceFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	r := New(Options{
		Outputs:  outputs,
		Inputs:   inputs,
		Track:    models.TrackSentence,
		Schedule: track.Default(),
		Reporter: report.New(&buf, zerolog.Nop()),
		Logger:   zerolog.Nop(),
	})
	assert.ErrorIs(t, r.Run(ctx), context.Canceled)
}

// TestRun_SkeletonRoundTrip mirrors the skeleton-generation guarantee:
// copying an input's source sentences and terms verbatim into a well-formed
// output always passes the consistency stage.
func TestRun_SkeletonRoundTrip(t *testing.T) {
	_, inputs := sentenceFixture()
	outputs := fstest.MapFS{
		"sys.enes.noterm.jsonl": file(
			`{"en":"Hello","es":""}`,
			`{"en":"Bye","es":""}`,
		),
		"sys.enes.random.jsonl": file(
			`{"en":"Hello","es":"","terms":{"cat":"gato"}}`,
			`{"en":"Bye","es":"","terms":{}}`,
		),
		"sys.enes.proper.jsonl": file(
			`{"en":"Hello","es":"","terms":{"dog":"perro"}}`,
			`{"en":"Bye","es":"","terms":{}}`,
		),
	}
	_, err := run(t, outputs, inputs, models.TrackSentence)
	require.NoError(t, err)
}
