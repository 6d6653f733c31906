package openava

import "sync/atomic"

// IDGenerator hands out unique detection IDs so individual boxes can be
// traced from the detector boundary through to the tracks they updated.
// Safe for concurrent use
type IDGenerator struct {
	id atomic.Int64
}

// NewIDGenerator returns a generator whose first ID is 1
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// GetNext returns the next detection ID
func (g *IDGenerator) GetNext() int64 {
	return g.id.Add(1)
}
