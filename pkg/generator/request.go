package generator

import (
	"fmt"
	"math/rand/v2"
)

// Bounds are the upper limits used when a parameter is random.
type Bounds struct {
	MaxFiles   int
	MaxNumbers int
	MaxRange   int
}

func DefaultBounds() Bounds {
	return Bounds{MaxFiles: 5, MaxNumbers: 100, MaxRange: 1000}
}

// GenerationRequest is the resolved work for one run.
type GenerationRequest struct {
	FileCount      int `json:"file_count"`
	NumbersPerFile int `json:"numbers_per_file"`
	RangeMagnitude int `json:"range_magnitude"`
}

func (r GenerationRequest) String() string {
	return fmt.Sprintf("Generating %d files, %d numbers per file and range(-%d,%d).",
		r.FileCount, r.NumbersPerFile, r.RangeMagnitude, r.RangeMagnitude)
}

type Resolver struct {
	Bounds Bounds
	Marker string
	rng    *rand.Rand
}

func NewResolver(bounds Bounds, marker string, rng *rand.Rand) *Resolver {
	if marker == "" {
		marker = DefaultMarker
	}
	return &Resolver{Bounds: bounds, Marker: marker, rng: rng}
}

// Resolve parses the three raw tokens and resolves them into a request.
func (r *Resolver) Resolve(files, numbers, rangeTok string) (GenerationRequest, error) {
	fp, err := ParseParam("file count", files, r.Marker)
	if err != nil {
		return GenerationRequest{}, err
	}
	np, err := ParseParam("numbers per file", numbers, r.Marker)
	if err != nil {
		return GenerationRequest{}, err
	}
	rp, err := ParseParam("range", rangeTok, r.Marker)
	if err != nil {
		return GenerationRequest{}, err
	}
	return r.ResolveParams(fp, np, rp), nil
}

func (r *Resolver) ResolveParams(files, numbers, rangeP Param) GenerationRequest {
	return GenerationRequest{
		FileCount:      files.Resolve(r.rng, r.Bounds.MaxFiles),
		NumbersPerFile: numbers.Resolve(r.rng, r.Bounds.MaxNumbers),
		RangeMagnitude: rangeP.Resolve(r.rng, r.Bounds.MaxRange),
	}
}
