// Package codec reads and writes score files.
//
// The format is one decimal value per line, nothing else:
//
//	7.5
//	10
//	3.25
//
// Decoding is permissive: each line contributes the number it starts with,
// if any and if it is a valid score. Everything else is skipped silently so
// that hand-edited files still load.
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okian/gradestats/internal/domain/model"
)

// Report counts how the lines of one decode were handled.
type Report struct {
	Accepted   int
	Malformed  int
	OutOfRange int
}

// Skipped returns the number of lines that did not produce a score.
func (r Report) Skipped() int { return r.Malformed + r.OutOfRange }

// Format renders a single score the way Encode writes it: the shortest
// decimal text that parses back to the same float64.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Encode returns the file text for scores.
func Encode(scores []float64) string {
	var b strings.Builder
	for _, s := range scores {
		b.WriteString(Format(s))
		b.WriteByte('\n')
	}
	return b.String()
}

// EncodeTo writes the file text for scores to w.
func EncodeTo(w io.Writer, scores []float64) error {
	bw := bufio.NewWriter(w)
	for _, s := range scores {
		if _, err := bw.WriteString(Format(s)); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// Decode reads scores from r, one per line, in order.
func Decode(r io.Reader) ([]float64, error) {
	scores, _, err := DecodeWithReport(r)
	return scores, err
}

// DecodeString decodes text. It never fails.
func DecodeString(text string) []float64 {
	scores, _, _ := DecodeWithReport(strings.NewReader(text))
	return scores
}

// DecodeWithReport is Decode plus per-line accounting. Lines have no length
// limit. The only error is a read failure, wrapped in ErrIO; scores decoded
// before the failure are discarded.
func DecodeWithReport(r io.Reader) ([]float64, Report, error) {
	var (
		scores []float64
		rep    Report
	)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, Report{}, fmt.Errorf("%w: %w", ErrIO, err)
		}
		if line == "" && err != nil {
			break
		}

		v, ok := leadingNumber(line)
		switch {
		case !ok:
			rep.Malformed++
		case !model.Valid(v):
			rep.OutOfRange++
		default:
			scores = append(scores, v)
			rep.Accepted++
		}

		if err != nil {
			break
		}
	}
	return scores, rep, nil
}

// leadingNumber parses the decimal number at the start of s, after optional
// whitespace. Trailing text is ignored.
func leadingNumber(s string) (float64, bool) {
	v, _, ok := scanNumber(s)
	return v, ok
}

// ParseScore parses s as a single decimal number. Surrounding whitespace is
// allowed; any other text, including forms strconv alone would take such as
// "1_0" or "0x1p-2", fails with ErrMalformed.
func ParseScore(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	v, end, ok := scanNumber(trimmed)
	if !ok || end != len(trimmed) {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	return v, nil
}

// scanNumber reads [sign] digits [. digits] [e|E [sign] digits] after
// optional leading whitespace and returns the value and the index just past
// the token. At least one mantissa digit is required. A well-formed token
// that overflows float64 is reported as ±Inf.
func scanNumber(s string) (float64, int, bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, 0, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > k {
			i = j
		}
	}

	v, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, i, true
		}
		return 0, 0, false
	}
	return v, i, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
