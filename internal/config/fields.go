package config

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/san-kum/odelab/internal/dynamo"
)

// ErrInvalidInput is returned when raw fields fail validation.
var ErrInvalidInput = errors.New("config: invalid input")

// InvalidInputMessage describes the accepted input to a user.
const InvalidInputMessage = `You should provide a valid input:

1) Each field 'steps', 'n0', 'N' should contain a positive integer.
2) Each field 'x0', 'y0', 'X' should contain a real number.
3) 'x0' should be less than 'X' and 'n0' less than 'N'.
4) The interval [x0, X] must not contain 0.`

var (
	intPattern  = regexp.MustCompile(`^([1-9]\d*|0)$`)
	realPattern = regexp.MustCompile(`^([-+]?\d*\.?\d+)$`)
)

// Fields are the six raw text values a user types in.
type Fields struct {
	X0    string
	Y0    string
	Xn    string
	Steps string
	N0    string
	N     string
}

// FieldsFromProblem formats p the way the input form displays it.
func FieldsFromProblem(p dynamo.Problem) Fields {
	return Fields{
		X0:    strconv.FormatFloat(p.X0, 'f', 4, 64),
		Y0:    strconv.FormatFloat(p.Y0, 'f', 4, 64),
		Xn:    strconv.FormatFloat(p.Xn, 'f', 4, 64),
		Steps: strconv.Itoa(p.Steps),
		N0:    strconv.Itoa(p.N0),
		N:     strconv.Itoa(p.N),
	}
}

// Validate reports whether f describes an acceptable problem.
func Validate(f Fields) bool {
	_, err := f.Parse()
	return err == nil
}

// Parse converts the fields into a problem, or explains the first rule
// they break. The returned error wraps ErrInvalidInput.
func (f Fields) Parse() (dynamo.Problem, error) {
	var p dynamo.Problem
	var err error

	if p.Steps, err = parseCount("steps", f.Steps); err != nil {
		return dynamo.Problem{}, err
	}
	if p.N0, err = parseCount("n0", f.N0); err != nil {
		return dynamo.Problem{}, err
	}
	if p.N, err = parseCount("N", f.N); err != nil {
		return dynamo.Problem{}, err
	}
	if p.X0, err = parseReal("x0", f.X0); err != nil {
		return dynamo.Problem{}, err
	}
	if p.Y0, err = parseReal("y0", f.Y0); err != nil {
		return dynamo.Problem{}, err
	}
	if p.Xn, err = parseReal("X", f.Xn); err != nil {
		return dynamo.Problem{}, err
	}

	if err := p.Validate(); err != nil {
		return dynamo.Problem{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return p, nil
}

func parseCount(name, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if !intPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer, got %q", ErrInvalidInput, name, raw)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidInput, name, err)
	}
	return n, nil
}

func parseReal(name, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if !realPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %s must be a real number, got %q", ErrInvalidInput, name, raw)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidInput, name, err)
	}
	return v, nil
}
