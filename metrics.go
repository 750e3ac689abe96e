package qsym

import "time"

/*
Stats describes one evolution. FullMultiplications counts the 2^n-wide
products: one per flush and one per embedded two-qubit gate.
*/
type Stats struct {
	SingleQubitGates    int
	TwoQubitGates       int
	Flushes             int
	FullMultiplications int
	Duration            time.Duration
}

func (s *Stats) recordFlush() {
	s.Flushes++
	s.FullMultiplications++
}

func (s *Stats) recordTwoQubit() {
	s.TwoQubitGates++
	s.FullMultiplications++
}

func (s *Stats) Export() map[string]interface{} {
	return map[string]interface{}{
		"single_qubit_gates":   s.SingleQubitGates,
		"two_qubit_gates":      s.TwoQubitGates,
		"flushes":              s.Flushes,
		"full_multiplications": s.FullMultiplications,
		"duration_us":          s.Duration.Microseconds(),
	}
}
