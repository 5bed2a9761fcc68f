package event

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// Parse reads a line-oriented event script. Every line holds one
// event:
//
//	digit <n>      mantissa digit with value n
//	exp-digit <n>  exponent digit with value n
//	radix          radix point at the current offset
//	neg | pos      number sign
//	exp-neg | exp-pos  exponent sign
//
// Digit values are given in decimal, regardless of the number base
// they will be accumulated in. Blank lines and lines starting with
// '#' are skipped.
func Parse(source io.Reader) ([]Event, error) {
	var events []Event

	sc := bufio.NewScanner(source)
	line := 0
	for sc.Scan() {
		line++

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		ev, err := decode(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	return events, nil
}

// ParseFile reads an event script from the given file.
func ParseFile(fs afero.Fs, path string) ([]Event, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	events, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return events, nil
}

func decode(fields []string) (Event, error) {
	op, args := fields[0], fields[1:]

	switch op {
	case "digit", "exp-digit":
		if len(args) != 1 {
			return Event{}, fmt.Errorf("%s: want exactly one digit value, got %d", op, len(args))
		}
		digit, err := strconv.ParseUint(args[0], 10, 8)
		if err != nil {
			return Event{}, fmt.Errorf("%s: digit value %q: %w", op, args[0], err)
		}
		if op == "digit" {
			return NewDigit(uint8(digit)), nil
		}
		return NewExponentDigit(uint8(digit)), nil
	case "radix", "neg", "pos", "exp-neg", "exp-pos":
		if len(args) != 0 {
			return Event{}, fmt.Errorf("%s: want no arguments, got %d", op, len(args))
		}
	default:
		return Event{}, fmt.Errorf("unknown event %q", op)
	}

	switch op {
	case "radix":
		return NewRadixPoint(), nil
	case "neg":
		return NewSign(true), nil
	case "pos":
		return NewSign(false), nil
	case "exp-neg":
		return NewExponentSign(true), nil
	}
	return NewExponentSign(false), nil
}
