package objects

const maniaIntMask = 0x7FFFFFFF

// maniaIntToReal mirrors the reference's `1.0 / (i32::MAX as f64 + 1.0)`.
const maniaIntToReal = 1.0 / (2147483647.0 + 1.0)

// ManiaRandom is the Marsaglia xorshift PRNG spec.md §6 names as
// load-bearing for Mania conversion's bit-exactness. Ported verbatim from
// original_source/src/beatmap/converts/mania/legacy_random.rs.
type ManiaRandom struct {
	x, y, z, w uint32

	bitBuffer uint32
	bitIndex  int
}

// NewManiaRandom seeds the generator with spec.md §6's fixed state tuple.
func NewManiaRandom(seed int32) *ManiaRandom {
	return &ManiaRandom{x: uint32(seed), y: 842502087, z: 3579807591, w: 273326509}
}

func (r *ManiaRandom) nextUint32() uint32 {
	t := r.x ^ (r.x << 11)
	r.x = r.y
	r.y = r.z
	r.z = r.w
	r.w = r.w ^ (r.w >> 19) ^ t ^ (t >> 8)

	return r.w
}

func (r *ManiaRandom) nextInt32() int32 {
	return int32(maniaIntMask & r.nextUint32())
}

// NextDouble returns a value in [0, 1).
func (r *ManiaRandom) NextDouble() float64 {
	return maniaIntToReal * float64(r.nextInt32())
}

// NextIntRange returns an integer in [min, max).
func (r *ManiaRandom) NextIntRange(min, max int) int {
	return min + int(r.NextDouble()*float64(max-min))
}

// NextBool draws one bit from a 32-bit buffer refilled every 32 draws
// (spec.md §6's "single-bit via a bit buffer refilled every 32 draws" —
// reconstructed from that prose, since no retrieved source exercises this
// primitive directly).
func (r *ManiaRandom) NextBool() bool {
	if r.bitIndex == 0 {
		r.bitBuffer = r.nextUint32()
		r.bitIndex = 32
	}

	r.bitIndex--

	return r.bitBuffer&(1<<uint(r.bitIndex)) != 0
}
