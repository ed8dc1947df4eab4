package sample

import "github.com/chewxy/math32"

// Extent is the (min, max) pair an envelope bucket reduces to.
type Extent struct {
	Min float32
	Max float32
}

// BucketSize returns how many consecutive samples share one pixel column when
// n samples are spread over width columns. When there are fewer samples than
// columns the size degenerates to one sample per bucket, leaving the trailing
// n mod width columns without data (known limitation, not extended here).
func BucketSize(n int, width float32) int {
	size := int(float32(n) / width)
	if size < 1 {
		return 1
	}
	return size
}

// ReduceMean reduces samples to one arithmetic mean per pixel column.
// Destination-based: reuses dst if it has sufficient capacity, otherwise
// allocates new. Returns the destination slice (may be dst if reused, or a
// new slice if dst was too small). The last bucket may cover fewer samples.
// Panics on an empty samples slice; plotted buffers must be non-empty.
func ReduceMean(dst []float32, samples []float32, width float32) []float32 {
	if len(samples) == 0 {
		panic("sample: ReduceMean on empty buffer")
	}

	size := BucketSize(len(samples), width)
	buckets := (len(samples) + size - 1) / size

	if cap(dst) >= buckets {
		dst = dst[:0] // Reset length but keep capacity
	} else {
		dst = make([]float32, 0, buckets)
	}

	for start := 0; start < len(samples); start += size {
		end := min(start+size, len(samples))
		bucket := samples[start:end]

		var sum float32
		for _, v := range bucket {
			sum += v
		}
		dst = append(dst, sum/float32(len(bucket)))
	}

	return dst
}

// ReduceEnvelope reduces samples to one exact (min, max) extent per pixel
// column using a single linear scan. Destination-based: reuses dst if it has
// sufficient capacity, otherwise allocates new. Returns the destination slice.
// Panics on an empty samples slice; plotted buffers must be non-empty.
// NaN samples propagate into the extents (caller contract: no NaNs in
// plotted data).
func ReduceEnvelope(dst []Extent, samples []float32, width float32) []Extent {
	if len(samples) == 0 {
		panic("sample: ReduceEnvelope on empty buffer")
	}

	size := BucketSize(len(samples), width)
	buckets := (len(samples) + size - 1) / size

	if cap(dst) >= buckets {
		dst = dst[:0]
	} else {
		dst = make([]Extent, 0, buckets)
	}

	for start := 0; start < len(samples); start += size {
		end := min(start+size, len(samples))
		bucket := samples[start:end]

		ext := Extent{Min: bucket[0], Max: bucket[0]}
		for _, v := range bucket[1:] {
			ext.Min = math32.Min(ext.Min, v)
			ext.Max = math32.Max(ext.Max, v)
		}
		dst = append(dst, ext)
	}

	return dst
}
