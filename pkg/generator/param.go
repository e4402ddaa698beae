package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// DefaultMarker is the token that asks for a random value.
const DefaultMarker = "x"

var (
	ErrInvalidToken = errors.New("token is neither the random marker nor an integer")
	ErrNotPositive  = errors.New("value must be a positive integer")
	ErrOutOfRange   = errors.New("integer does not fit in int")
)

// ParseError reports a prompt token that could not be turned into a Param.
type ParseError struct {
	Param string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: cannot use %q: %v", e.Param, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type ParamKind int

const (
	Fixed ParamKind = iota
	Random
)

func (k ParamKind) String() string {
	if k == Random {
		return "random"
	}
	return "fixed"
}

// Param is either Random or Fixed(Value).
type Param struct {
	Kind  ParamKind
	Value int
}

func RandomParam() Param {
	return Param{Kind: Random}
}

func FixedParam(v int) Param {
	return Param{Kind: Fixed, Value: v}
}

// ParseParam turns a raw prompt token into a Param. name is only used in errors.
func ParseParam(name, token, marker string) (Param, error) {
	if marker == "" {
		marker = DefaultMarker
	}

	t := strings.TrimSpace(token)
	if t == marker {
		return RandomParam(), nil
	}

	v, err := strconv.Atoi(t)
	if errors.Is(err, strconv.ErrRange) {
		return Param{}, &ParseError{Param: name, Token: token, Err: ErrOutOfRange}
	}
	if err != nil {
		return Param{}, &ParseError{Param: name, Token: token, Err: ErrInvalidToken}
	}
	if v < 1 {
		return Param{}, &ParseError{Param: name, Token: token, Err: ErrNotPositive}
	}
	return FixedParam(v), nil
}

// Resolve returns the concrete value. Random draws from [1, bound]; Fixed
// values are returned as given, even above bound.
func (p Param) Resolve(rng *rand.Rand, bound int) int {
	if p.Kind == Random {
		return rng.IntN(bound) + 1
	}
	return p.Value
}

func (p Param) String() string {
	if p.Kind == Random {
		return "random"
	}
	return strconv.Itoa(p.Value)
}
