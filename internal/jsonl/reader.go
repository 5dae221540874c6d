// Package jsonl reads JSON Lines files: UTF-8 text, one JSON object per line.
package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"terminology-submission-validator/internal/models"
)

// Extension is the required filename extension for every task file.
const Extension = ".jsonl"

// Document lines can be long; size the scanner well above any realistic line.
const maxLineBytes = 16 * 1024 * 1024

// FormatError reports a file that is not valid JSON Lines. The read is
// all-or-nothing: a single undecodable line fails the whole file and no
// partial records are returned.
type FormatError struct {
	File string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s does not have JSONL format", e.File)
}

// ReadAll decodes every line of the named file as one JSON object, preserving
// line order and filling each record's terms default.
func ReadAll(fsys fs.FS, name string) ([]models.Record, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	var recs []models.Record
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	for sc.Scan() {
		var fields map[string]any
		if err := json.Unmarshal(sc.Bytes(), &fields); err != nil {
			return nil, &FormatError{File: name}
		}
		recs = append(recs, models.NewRecord(fields))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return recs, nil
}

// List returns the .jsonl filenames in the root of fsys, sorted. Other
// entries are ignored; the task directories are flat by contract, so
// subdirectories are skipped rather than descended into.
func List(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("list directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
