// Package metrics holds histogram boundaries shared by the instruments of the
// service.
package metrics

// DefaultBuckets are latency boundaries in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// SizeBuckets are body size boundaries in bytes, from small JSON documents up
// to uploaded images.
var SizeBuckets = []float64{ //nolint: gochecknoglobals
	128, 512, 1 << 10, 4 << 10, 16 << 10, 64 << 10, 256 << 10, 1 << 20, 4 << 20, 16 << 20,
}
