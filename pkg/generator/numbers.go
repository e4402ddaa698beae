package generator

import (
	"bufio"
	"context"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// how many numbers Stream writes between context checks
const streamCheckEvery = 4096

// NewRand returns a PCG source seeded with seed, or with the clock when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type NumberGenerator struct {
	rng *rand.Rand
}

func NewNumberGenerator(rng *rand.Rand) *NumberGenerator {
	return &NumberGenerator{rng: rng}
}

// Next draws one integer uniformly from [-magnitude, magnitude]. Any positive
// int is accepted, including math.MaxInt.
func (ng *NumberGenerator) Next(magnitude int) int {
	m := uint64(magnitude)
	// 2*m+1 <= 2^64-1 for every positive int
	u := ng.rng.Uint64N(2*m + 1)
	return int(int64(u - m))
}

// Generate returns count integers drawn uniformly from [-magnitude, magnitude].
func (ng *NumberGenerator) Generate(count, magnitude int) []int {
	nums := make([]int, 0, min(count, streamCheckEvery))
	for i := 0; i < count; i++ {
		nums = append(nums, ng.Next(magnitude))
	}
	return nums
}

func (ng *NumberGenerator) GenerateString(count, magnitude int) string {
	var sb strings.Builder
	ng.Stream(context.Background(), &sb, count, magnitude)
	return sb.String()
}

// Stream writes count comma-separated numbers to w without holding them in
// memory. It returns the number of bytes written.
func (ng *NumberGenerator) Stream(ctx context.Context, w io.Writer, count, magnitude int) (int64, error) {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	var written int64

	for i := 0; i < count; i++ {
		if i%streamCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				bw.Flush()
				return written, err
			}
		}

		buf = buf[:0]
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(ng.Next(magnitude)), 10)
		n, err := bw.Write(buf)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}

// Render joins nums with commas, no trailing separator.
func Render(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// ParseNumbers is the inverse of Render.
func ParseNumbers(content string) ([]int, error) {
	if content == "" {
		return nil, nil
	}
	parts := strings.Split(content, ",")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}
