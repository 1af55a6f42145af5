package compress

// ZstdCompressor compresses packed bodies with Zstandard. It favors
// compression ratio over speed, which suits cold storage of large packed
// sequences.
//
// Two implementations exist behind build tags: a cgo-backed one using
// gozstd, and a pure-Go one using klauspost/compress/zstd for builds
// without cgo.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
