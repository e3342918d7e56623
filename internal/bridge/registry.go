// Package bridge exposes the host-facing call contract: opaque handles over
// live animation instances. It owns the handle registry; nothing here is
// process-global.
package bridge

import "github.com/camkinetics/camrender/internal/mechanism"

// Handle is the opaque identifier the host holds for one animation
// instance. The zero Handle is never valid.
type Handle int64

// Instance is one live animation context as seen from the bridge.
type Instance interface {
	UpdateData(p mechanism.Profile) error
	Render()
	TextureID() uint32
	Play()
	Pause()
	Reset()
	CurrentFrame() int
	SetCurrentFrame(f int)
	Close()
}

// registry is a generation-checked slot map. Destroying a handle bumps its
// slot's generation, so a stale handle held by the host is detected rather
// than silently hitting a recycled slot.
type registry struct {
	slots []slot
	free  []int
}

type slot struct {
	inst       Instance
	generation uint32
}

// packHandle combines slot index and generation into one opaque value.
// Generations start at 1, so a packed handle is never zero.
func packHandle(index int, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(uint32(index)))
}

func unpackHandle(h Handle) (index int, generation uint32) {
	return int(uint32(uint64(h))), uint32(uint64(h) >> 32)
}

// insert stores an instance and returns its handle.
func (r *registry) insert(inst Instance) Handle {
	var index int
	if n := len(r.free); n > 0 {
		index = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		index = len(r.slots)
		r.slots = append(r.slots, slot{})
	}

	s := &r.slots[index]
	s.generation++
	s.inst = inst
	return packHandle(index, s.generation)
}

// get resolves a handle to its live instance.
func (r *registry) get(h Handle) (Instance, bool) {
	index, generation := unpackHandle(h)
	if index < 0 || index >= len(r.slots) {
		return nil, false
	}
	s := &r.slots[index]
	if s.inst == nil || s.generation != generation {
		return nil, false
	}
	return s.inst, true
}

// remove detaches a handle's instance, invalidating the handle. The caller
// is responsible for closing the returned instance.
func (r *registry) remove(h Handle) (Instance, bool) {
	index, generation := unpackHandle(h)
	if index < 0 || index >= len(r.slots) {
		return nil, false
	}
	s := &r.slots[index]
	if s.inst == nil || s.generation != generation {
		return nil, false
	}
	inst := s.inst
	s.inst = nil
	s.generation++ // stale handles to this slot can never match again
	r.free = append(r.free, index)
	return inst, true
}

// each visits every live instance.
func (r *registry) each(fn func(Instance)) {
	for i := range r.slots {
		if r.slots[i].inst != nil {
			fn(r.slots[i].inst)
		}
	}
}
