package generator

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseParam(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    Param
		wantErr error
	}{
		{"marker", "x", RandomParam(), nil},
		{"marker with spaces", "  x \n", RandomParam(), nil},
		{"integer", "42", FixedParam(42), nil},
		{"integer above bound", "5000", FixedParam(5000), nil},
		{"empty", "", Param{}, ErrInvalidToken},
		{"word", "ten", Param{}, ErrInvalidToken},
		{"upper marker", "X", Param{}, ErrInvalidToken},
		{"float", "1.5", Param{}, ErrInvalidToken},
		{"zero", "0", Param{}, ErrNotPositive},
		{"negative", "-3", Param{}, ErrNotPositive},
		{"max int", strconv.Itoa(math.MaxInt), FixedParam(math.MaxInt), nil},
		{"too large for int", "99999999999999999999", Param{}, ErrOutOfRange},
		{"too small for int", "-99999999999999999999", Param{}, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseParam("file count", tt.token, DefaultMarker)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				var pe *ParseError
				require.True(t, errors.As(err, &pe), "error should be a *ParseError")
				require.Equal(t, "file count", pe.Param)
				require.Equal(t, tt.token, pe.Token)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseParamCustomMarker(t *testing.T) {
	p, err := ParseParam("range", "rand", "rand")
	require.NoError(t, err)
	require.Equal(t, Random, p.Kind)

	_, err = ParseParam("range", "x", "rand")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRandomParamWithinBound(t *testing.T) {
	rng := NewRand(7)
	for _, bound := range []int{1, 5, 100, 1000} {
		seen := map[int]bool{}
		for i := 0; i < 2000; i++ {
			v := RandomParam().Resolve(rng, bound)
			if v < 1 || v > bound {
				t.Fatalf("Resolve(bound=%d) = %d, want value in [1, %d]", bound, v, bound)
			}
			seen[v] = true
		}
		if bound == 5 && len(seen) != 5 {
			t.Errorf("expected all 5 values to be drawn, got %v", seen)
		}
	}
}

func TestFixedParamIgnoresBound(t *testing.T) {
	require.Equal(t, 250, FixedParam(250).Resolve(NewRand(1), 5))
}

func TestResolver(t *testing.T) {
	r := NewResolver(DefaultBounds(), "", NewRand(3))

	req, err := r.Resolve("1", "3", "5")
	require.NoError(t, err)
	require.Equal(t, GenerationRequest{FileCount: 1, NumbersPerFile: 3, RangeMagnitude: 5}, req)

	for i := 0; i < 500; i++ {
		req, err := r.Resolve("x", "x", "x")
		require.NoError(t, err)
		require.True(t, req.FileCount >= 1 && req.FileCount <= 5, "files %d", req.FileCount)
		require.True(t, req.NumbersPerFile >= 1 && req.NumbersPerFile <= 100, "numbers %d", req.NumbersPerFile)
		require.True(t, req.RangeMagnitude >= 1 && req.RangeMagnitude <= 1000, "range %d", req.RangeMagnitude)
	}
}

func TestResolverAcceptsHugeFixedValues(t *testing.T) {
	r := NewResolver(DefaultBounds(), DefaultMarker, NewRand(3))

	req, err := r.Resolve("1", strconv.Itoa(math.MaxInt), strconv.Itoa(math.MaxInt))
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, req.NumbersPerFile)
	require.Equal(t, math.MaxInt, req.RangeMagnitude)
}

func TestResolverReportsFailingParam(t *testing.T) {
	r := NewResolver(DefaultBounds(), DefaultMarker, NewRand(3))

	_, err := r.Resolve("2", "many", "5")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "numbers per file", pe.Param)
	require.Equal(t, "many", pe.Token)
}

func TestGenerationRequestString(t *testing.T) {
	req := GenerationRequest{FileCount: 2, NumbersPerFile: 10, RangeMagnitude: 7}
	require.Equal(t, "Generating 2 files, 10 numbers per file and range(-7,7).", req.String())
}
