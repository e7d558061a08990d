// Package idgen generates battle identifiers
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces a unique identifier per call
type Generator interface {
	Generate() string
}

// Sequential produces prefix_1, prefix_2, ... and is meant for tests
type Sequential struct {
	prefix string
	next   atomic.Uint64
}

// NewSequential creates a sequential generator. An empty prefix yields bare numbers.
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// Generate returns the next number in the sequence
func (g *Sequential) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.next.Add(1), 10))
}

// UUID produces version 7 UUIDs, which sort by creation time
type UUID struct {
	prefix string
}

// NewUUID creates a UUID generator. An empty prefix yields bare UUIDs.
func NewUUID(prefix string) *UUID {
	return &UUID{prefix: prefix}
}

// Generate returns a new time-ordered UUID, or a random one if the clock
// source fails
func (g *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return withPrefix(g.prefix, id.String())
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
