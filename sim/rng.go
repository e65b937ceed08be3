package sim

import (
	"hash/fnv"
	"math/rand"
)

// SimulationKey is the seed of a run. Replaying a workload under the same
// key yields the same PPDU sequence.
type SimulationKey int64

func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// Random streams drawn by the simulator.
const (
	SubsystemMode    = "mode"    // which ERP-OFDM rate each PPDU uses
	SubsystemPayload = "payload" // payload length of each PSDU
)

// PartitionedRNG hands out one independent random stream per named
// subsystem. Streams are seeded with key ^ fnv1a64(name), so the rate
// sequence stays fixed however many payload sizes are drawn, and the
// reverse.
//
// Not safe for concurrent use; the event loop is single-goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the stream for name, seeding it on first use.
// Repeated calls return the same *rand.Rand.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	rng, ok := p.subsystems[name]
	if !ok {
		rng = rand.New(rand.NewSource(int64(p.key) ^ fnv1a64(name)))
		p.subsystems[name] = rng
	}
	return rng
}

func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}
