package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
// It generates deterministic mesh fixtures for tests and benchmarks.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateVertices generates random vertex coordinates in the unit cube.
// Coordinates are rounded so they survive a float32 interchange round trip.
func (r *RNG) GenerateVertices(num int) [][3]float64 {
	vertices := make([][3]float64, num)
	for i := range vertices {
		for j := range vertices[i] {
			vertices[i][j] = float64(r.rand.Intn(1 << 20)) / float64(1<<20)
		}
	}
	return vertices
}

// GenerateTriangles generates random vertex-index triples referencing a
// vertex set of the given size.
func (r *RNG) GenerateTriangles(num, vertexCount int) [][3]uint64 {
	triangles := make([][3]uint64, num)
	for i := range triangles {
		for j := range triangles[i] {
			triangles[i][j] = uint64(r.rand.Intn(vertexCount))
		}
	}
	return triangles
}

// GenerateValues generates random attribute values.
func (r *RNG) GenerateValues(num int) []float64 {
	values := make([]float64, num)
	for i := range values {
		values[i] = float64(r.rand.Intn(1 << 20)) / float64(1<<20)
	}
	return values
}
