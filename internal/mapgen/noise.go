package mapgen

import "github.com/chewxy/math32"

// terrain is layered lattice noise. Each layer samples at lacunarity times the previous
// frequency with gain times its weight; the sum is normalized back into [0,1].
type terrain struct {
	seed       uint32
	layers     int
	lacunarity float32
	gain       float32
}

func newTerrain(opts HeightMapOptions) terrain {
	return terrain{
		seed:       uint32(opts.Seed) ^ uint32(opts.Seed>>32),
		layers:     opts.Octaves,
		lacunarity: opts.Lacunarity,
		gain:       opts.Gain,
	}
}

func (t terrain) at(x, y float32) float32 {
	var total, norm float32
	weight, freq := float32(1), float32(1)
	for layer := range t.layers {
		total += weight * t.sample(x*freq, y*freq, t.seed+uint32(layer)*0x9e3779b9)
		norm += weight
		weight *= t.gain
		freq *= t.lacunarity
	}
	if norm == 0 {
		return 0
	}
	return total / norm
}

// sample blends the four lattice corners around (x, y).
func (t terrain) sample(x, y float32, seed uint32) float32 {
	cx, cy := math32.Floor(x), math32.Floor(y)
	ix, iy := int32(cx), int32(cy)
	u, v := fade(x-cx), fade(y-cy)

	top := mix(corner(ix, iy, seed), corner(ix+1, iy, seed), u)
	bottom := mix(corner(ix, iy+1, seed), corner(ix+1, iy+1, seed), u)
	return mix(top, bottom, v)
}

// corner is a deterministic value in [0,1) for one lattice point.
func corner(x, y int32, seed uint32) float32 {
	h := uint32(x)*0x27d4eb2d ^ uint32(y)*0x165667b1 ^ seed
	h ^= h >> 15
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return float32(h>>8) / (1 << 24)
}

func mix(a, b, t float32) float32 { return a + (b-a)*t }

// fade is the quintic 6t^5 - 15t^4 + 10t^3, clamped to [0,1].
func fade(t float32) float32 {
	t = math32.Max(0, math32.Min(1, t))
	return t * t * t * (t*(t*6-15) + 10)
}
