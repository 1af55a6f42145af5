// Command bitpack-bench measures compress, decompress and random access
// timings for the three packing schemes over synthetic sequences of small
// values with large outliers, and prints the results as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/bitpack-io/bitpack/format"
	"github.com/bitpack-io/bitpack/packed"
)

type result struct {
	Scheme         string  `json:"scheme"`
	N              int     `json:"n"`
	BitWidth       int     `json:"bit_width"`
	Compression    string  `json:"compression"`
	CompressTime   float64 `json:"compress_seconds"`
	DecompressTime float64 `json:"decompress_seconds"`
	GetTime        float64 `json:"get_seconds"`
	CompressedSize int     `json:"compressed_bytes"`
	RawSize        int     `json:"raw_bytes"`
}

func main() {
	seed := flag.Int64("seed", 42, "random seed for input generation")
	compressionName := flag.String("compression", "none", "body compression: none, zstd, s2 or lz4")
	flag.Parse()

	compression, err := parseCompression(*compressionName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))

	var results []result
	for _, n := range []int{1000, 10000, 100000} {
		values := generate(rng, n)

		for _, cfg := range []struct {
			scheme   format.SchemeType
			bitWidth int
		}{
			{format.SchemeCross, 12},
			{format.SchemeAligned, 12},
			{format.SchemeOverflow, 4},
		} {
			r, err := run(cfg.scheme, cfg.bitWidth, compression, values)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s k=%d: %v\n", cfg.scheme, cfg.bitWidth, err)
				os.Exit(1)
			}
			results = append(results, r)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// generate produces n small values with roughly one large outlier per
// thousand, the workload the overflow scheme is designed for.
func generate(rng *rand.Rand, n int) []int64 {
	values := make([]int64, n)
	for i := range values {
		values[i] = int64(rng.Intn(16))
	}

	outliers := n / 1000
	if outliers < 1 {
		outliers = 1
	}
	for i := 0; i < outliers; i++ {
		values[rng.Intn(n)] = int64(rng.Intn(1 << 20))
	}

	return values
}

func run(scheme format.SchemeType, bitWidth int, compression format.CompressionType, values []int64) (result, error) {
	opts := []packed.Option{packed.WithCompression(compression)}

	// 12 bits cannot hold the 2^20 outliers; widen the fixed-width
	// schemes enough to make the comparison run on identical input.
	if scheme != format.SchemeOverflow {
		bitWidth = 20
	}

	codec, err := packed.New(scheme, bitWidth, opts...)
	if err != nil {
		return result{}, err
	}

	start := time.Now()
	buf, err := codec.Compress(values)
	if err != nil {
		return result{}, err
	}
	compressTime := time.Since(start)

	start = time.Now()
	decoded, err := codec.Decompress(buf)
	if err != nil {
		return result{}, err
	}
	decompressTime := time.Since(start)
	if len(decoded) != len(values) {
		return result{}, fmt.Errorf("decode length mismatch: got %d, want %d", len(decoded), len(values))
	}

	step := len(values) / 100
	if step < 1 {
		step = 1
	}
	start = time.Now()
	for i := 0; i < len(values); i += step {
		if _, err := codec.Get(buf, i); err != nil {
			return result{}, err
		}
	}
	getTime := time.Since(start)

	return result{
		Scheme:         scheme.String(),
		N:              len(values),
		BitWidth:       bitWidth,
		Compression:    compression.String(),
		CompressTime:   compressTime.Seconds(),
		DecompressTime: decompressTime.Seconds(),
		GetTime:        getTime.Seconds(),
		CompressedSize: len(buf),
		RawSize:        len(values) * 8,
	}, nil
}

func parseCompression(name string) (format.CompressionType, error) {
	switch name {
	case "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression: %q", name)
	}
}
