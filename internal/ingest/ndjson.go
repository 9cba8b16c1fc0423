package ingest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/rshade/carbonfoot/internal/footprint"
)

// maxLineBytes caps a single NDJSON line.
const maxLineBytes = 1 << 20

// Record is one NDJSON line: either a profile or the error decoding it.
type Record struct {
	// Line is the 1-based line number in the input.
	Line    int
	Profile footprint.Profile
	Err     error
}

// ReadNDJSON decodes one JSON profile per line. Blank lines are skipped.
// Malformed lines become records carrying Err; only read failures end the
// scan with an error.
func ReadNDJSON(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records []Record
	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}

		p, err := ParseProfile(data, FormatJSON)
		if err != nil {
			err = fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, Record{Line: line, Profile: p, Err: err})
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("reading NDJSON at line %d: %w", line+1, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	return records, nil
}
