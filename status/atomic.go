package status

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/edgecam/vmath"
)

// MaxStringLen bounds published strings such as team names
const MaxStringLen = 32

// AtomicFloat holds a float64 as raw bits, zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(v float64) { f.bits.Store(math.Float64bits(v)) }
func (f *AtomicFloat) Get() float64  { return math.Float64frombits(f.bits.Load()) }

// AtomicString holds a short string, longer values are truncated
type AtomicString struct {
	ptr atomic.Pointer[string]
}

func (s *AtomicString) Store(v string) {
	if len(v) > MaxStringLen {
		v = v[:MaxStringLen]
	}
	s.ptr.Store(&v)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// AtomicVec3 publishes a position so readers never see components from different frames
type AtomicVec3 struct {
	ptr atomic.Pointer[vmath.Vec3F]
}

func (a *AtomicVec3) Set(v vmath.Vec3F) { a.ptr.Store(&v) }

func (a *AtomicVec3) Get() vmath.Vec3F {
	if p := a.ptr.Load(); p != nil {
		return *p
	}
	return vmath.Vec3F{}
}
