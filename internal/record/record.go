// Package record reads and writes the flat roll-record CSV format:
// index, person, pip count and the comma-joined roll values, no header.
package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FieldCount is the number of columns in every row.
const FieldCount = 4

// ErrMalformed marks rows that cannot be turned into a Record.
var ErrMalformed = errors.New("malformed roll record")

// Record is one recorded trial: a roller's values attributed to a person.
type Record struct {
	Index  int
	Person string
	Pips   int
	Rolls  []int
}

// Validate checks pip count and that every roll is a face of the die.
func (r Record) Validate() error {
	if r.Pips <= 0 {
		return fmt.Errorf("%w: pip count %d must be positive", ErrMalformed, r.Pips)
	}
	if len(r.Rolls) == 0 {
		return fmt.Errorf("%w: no roll values", ErrMalformed)
	}
	for _, v := range r.Rolls {
		if v < 1 || v > r.Pips {
			return fmt.Errorf("%w: roll %d not in [1, %d]", ErrMalformed, v, r.Pips)
		}
	}
	return nil
}

// RollField renders the rolls the way they are stored, e.g. "3,5".
func (r Record) RollField() string {
	parts := make([]string, len(r.Rolls))
	for i, v := range r.Rolls {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// ReadFile opens path and reads every record. The file is closed before
// returning.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roll records: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}

// Read parses all rows from r. Any bad row fails the whole read.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = FieldCount
	cr.TrimLeadingSpace = true

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read roll records: %w", err)
		}

		line, _ := cr.FieldPos(0)
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string) (Record, error) {
	index, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: index %q is not an integer", ErrMalformed, row[0])
	}
	pips, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: pip count %q is not an integer", ErrMalformed, row[2])
	}

	var rolls []int
	for _, part := range strings.Split(row[3], ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Record{}, fmt.Errorf("%w: roll value %q is not an integer", ErrMalformed, part)
		}
		rolls = append(rolls, v)
	}

	rec := Record{Index: index, Person: row[1], Pips: pips, Rolls: rolls}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Write emits records as CSV rows. The roll field is quoted because it
// contains the delimiter.
func Write(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.Index),
			rec.Person,
			strconv.Itoa(rec.Pips),
			rec.RollField(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile creates or truncates path and writes records to it.
func WriteFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create roll records: %w", err)
	}
	if err := Write(f, records); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
