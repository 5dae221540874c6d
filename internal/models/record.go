package models

// TermsKey is the record key holding the terminology mapping.
const TermsKey = "terms"

// Record is one decoded line of a JSON Lines file.
//
// Fields holds the keys exactly as submitted; the schema stage checks the
// key set against it. Terms is the normalized terminology value: the raw
// "terms" value when present, an empty mapping otherwise. The default is
// filled once at load time so the consistency stage never special-cases an
// absent key.
type Record struct {
	Fields map[string]any
	Terms  any
}

// NewRecord wraps a decoded JSON object and fills the terms default.
func NewRecord(fields map[string]any) Record {
	terms, ok := fields[TermsKey]
	if !ok {
		terms = map[string]any{}
	}
	return Record{Fields: fields, Terms: terms}
}

// Source returns the record's value for the given language code.
func (r Record) Source(code string) any {
	return r.Fields[code]
}
