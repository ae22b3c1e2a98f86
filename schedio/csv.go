// Package schedio - CSV instance load/save.
package schedio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/schedkit/schedkit/sched"
)

var (
	// ErrMissingHeader indicates the file has no first record.
	ErrMissingHeader = errors.New("schedio: missing M,N header record")
	// ErrMissingTimes indicates the file has no second record.
	ErrMissingTimes = errors.New("schedio: missing processing-times record")
	// ErrHeaderFields indicates the header does not hold exactly two fields.
	ErrHeaderFields = errors.New("schedio: header record must contain exactly two fields: M,N")
	// ErrTimesFields indicates the second record does not hold exactly N fields.
	ErrTimesFields = errors.New("schedio: processing-times record must contain exactly N fields")
	// ErrFieldSyntax indicates a field is not a valid integer.
	ErrFieldSyntax = errors.New("schedio: field is not a valid integer")
)

// LoadReader parses one instance from r.
//
// Errors: the sentinels above for structural defects; sched constructor
// errors (wrapped) for invalid M/N/processing times.
//
// Complexity: O(N).
func LoadReader(r io.Reader) (*sched.ProblemInstance, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // field counts are validated per record below
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingHeader
		}

		return nil, fmt.Errorf("schedio: reading header: %w", err)
	}
	if len(header) != 2 {
		return nil, ErrHeaderFields
	}

	m, err := parseIntField(header[0])
	if err != nil {
		return nil, err
	}
	n, err := parseIntField(header[1])
	if err != nil {
		return nil, err
	}

	times, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingTimes
		}

		return nil, fmt.Errorf("schedio: reading processing times: %w", err)
	}
	if len(times) != n {
		return nil, ErrTimesFields
	}

	p := make([]int64, n)

	var i int
	for i = 0; i < n; i++ {
		v, perr := parseInt64Field(times[i])
		if perr != nil {
			return nil, perr
		}
		p[i] = v
	}

	inst, err := sched.NewInstance(m, n, p)
	if err != nil {
		return nil, fmt.Errorf("schedio: %w", err)
	}

	return inst, nil
}

// Load reads an instance from the file at path.
func Load(path string) (*sched.ProblemInstance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schedio: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadReader(f)
}

// WriteTo writes inst to w in the canonical two-record form.
func WriteTo(w io.Writer, inst *sched.ProblemInstance) error {
	if inst == nil {
		return sched.ErrNilInstance
	}

	cw := csv.NewWriter(w)

	if err := cw.Write([]string{strconv.Itoa(inst.M), strconv.Itoa(inst.N)}); err != nil {
		return fmt.Errorf("schedio: writing header: %w", err)
	}

	fields := make([]string, inst.N)

	var i int
	for i = 0; i < inst.N; i++ {
		fields[i] = strconv.FormatInt(inst.P[i], 10)
	}
	if err := cw.Write(fields); err != nil {
		return fmt.Errorf("schedio: writing processing times: %w", err)
	}

	cw.Flush()

	return cw.Error()
}

// Save writes inst to the file at path, creating or truncating it.
func Save(path string, inst *sched.ProblemInstance) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("schedio: create %s: %w", path, err)
	}

	if err = WriteTo(f, inst); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// parseIntField parses a trimmed base-10 int field.
func parseIntField(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFieldSyntax, s)
	}

	return v, nil
}

// parseInt64Field parses a trimmed base-10 int64 field.
func parseInt64Field(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFieldSyntax, s)
	}

	return v, nil
}
