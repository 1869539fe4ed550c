package projects

import "sync/atomic"

// Metrics tracks validation outcomes for the name pipeline.
type Metrics struct {
	validations         int64
	duplicateRejections int64
	symbolRejections    int64
}

var globalMetrics = &Metrics{}

// GetMetrics returns the current metrics snapshot
func GetMetrics() Metrics {
	return Metrics{
		validations:         atomic.LoadInt64(&globalMetrics.validations),
		duplicateRejections: atomic.LoadInt64(&globalMetrics.duplicateRejections),
		symbolRejections:    atomic.LoadInt64(&globalMetrics.symbolRejections),
	}
}

// ResetMetrics resets all metrics (useful for testing)
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.validations, 0)
	atomic.StoreInt64(&globalMetrics.duplicateRejections, 0)
	atomic.StoreInt64(&globalMetrics.symbolRejections, 0)
}

func recordValidation() {
	atomic.AddInt64(&globalMetrics.validations, 1)
}

func recordDuplicateRejection() {
	atomic.AddInt64(&globalMetrics.duplicateRejections, 1)
}

func recordSymbolRejection() {
	atomic.AddInt64(&globalMetrics.symbolRejections, 1)
}

// Validations is the total number of names run through the validator.
func (m Metrics) Validations() int64 { return m.validations }

// DuplicateRejections counts names rejected by the uniqueness check.
func (m Metrics) DuplicateRejections() int64 { return m.duplicateRejections }

// SymbolRejections counts names rejected by the symbol policy.
func (m Metrics) SymbolRejections() int64 { return m.symbolRejections }

// RejectionRate returns the share of validations rejected, as a percentage.
func (m Metrics) RejectionRate() float64 {
	if m.validations == 0 {
		return 0
	}
	rejected := m.duplicateRejections + m.symbolRejections
	return float64(rejected) / float64(m.validations) * 100
}
