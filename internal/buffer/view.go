// Package buffer provides bounds-checked views over caller-owned sample
// buffers and a pool of scratch buffers for chained conversions.
package buffer

import "errors"

// Common errors for view construction.
var (
	// ErrNegativeCount is returned when the sample count is negative.
	ErrNegativeCount = errors.New("buffer: negative sample count")

	// ErrInvalidStride is returned when the stride is not positive.
	ErrInvalidStride = errors.New("buffer: stride must be positive")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("buffer: data buffer too small")
)

// View is a packed run of count fixed-stride records at the start of a
// byte slice. The slice it exposes is exactly count*stride bytes long, so a
// kernel that indexes it cannot touch memory past the declared samples.
//
// View does not own its data. Thread safety: a View is a value and may be
// shared; writes through Bytes need external synchronization.
type View struct {
	data   []byte
	count  int
	stride int
}

// NewView validates that data holds count records of stride bytes each and
// returns a view of exactly that many bytes.
func NewView(data []byte, count, stride int) (View, error) {
	if count < 0 {
		return View{}, ErrNegativeCount
	}
	if stride <= 0 {
		return View{}, ErrInvalidStride
	}
	size := count * stride
	if len(data) < size {
		return View{}, ErrDataTooSmall
	}
	return View{
		data:   data[:size:size],
		count:  count,
		stride: stride,
	}, nil
}

// Bytes returns the viewed bytes (len == Count()*Stride()).
func (v View) Bytes() []byte {
	return v.data
}

// Count returns the number of records.
func (v View) Count() int {
	return v.count
}

// Stride returns the byte size of one record.
func (v View) Stride() int {
	return v.stride
}

// Slice returns the records [from, to) as a new view sharing the data.
// Returns an empty view if the range is invalid.
func (v View) Slice(from, to int) View {
	if from < 0 || to > v.count || from > to {
		return View{stride: v.stride}
	}
	return View{
		data:   v.data[from*v.stride : to*v.stride : to*v.stride],
		count:  to - from,
		stride: v.stride,
	}
}

// IsEmpty returns true if the view holds no records.
func (v View) IsEmpty() bool {
	return v.count == 0
}
