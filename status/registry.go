package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Registry is the metrics facade shared by systems and renderers
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
	Vectors *MetricMap[AtomicVec3]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
		Vectors: NewMetricMap[AtomicVec3](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count() + r.Vectors.Count()
}

// Snapshot renders every metric as text, keyed by name
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out[k] = strconv.FormatBool(v.Load())
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out[k] = strconv.FormatInt(v.Load(), 10)
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out[k] = strconv.FormatFloat(v.Get(), 'f', 2, 64)
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out[k] = v.Load()
	})
	r.Vectors.Range(func(k string, v *AtomicVec3) {
		p := v.Get()
		out[k] = fmt.Sprintf("%.2f,%.2f,%.2f", p.X, p.Y, p.Z)
	})
	return out
}
