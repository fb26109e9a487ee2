//go:build !tinygo

// Package mmio is the register-access layer shared by every peripheral
// block. On MCU builds a register is a volatile 32-bit location; on host
// builds it is plain memory with test hooks, so the drivers and their
// tests compile and run under ordinary go test.
package mmio

// R32 is a 32-bit register backed by ordinary memory. The method set
// matches the volatile build exactly; Raw, SetRaw and the hook
// registration below exist only here and are reserved for test
// harnesses modelling hardware behaviour.
type R32 struct {
	v     uint32
	onGet []func()
	onSet []func(old, new uint32)
}

// Get returns the register value, running get hooks first so a harness
// can materialise read side effects (flag clearing, data popping).
func (r *R32) Get() uint32 {
	for _, f := range r.onGet {
		f()
	}
	return r.v
}

// Set stores v, then runs set hooks with the old and new values.
func (r *R32) Set(v uint32) {
	old := r.v
	r.v = v
	for _, f := range r.onSet {
		f(old, v)
	}
}

// SetBits sets the given bits, leaving the rest untouched.
func (r *R32) SetBits(bits uint32) { r.Set(r.Get() | bits) }

// ClearBits clears the given bits, leaving the rest untouched.
func (r *R32) ClearBits(bits uint32) { r.Set(r.Get() &^ bits) }

// HasBits reports whether any of the given bits are set.
func (r *R32) HasBits(bits uint32) bool { return r.Get()&bits != 0 }

// ReplaceBits writes bits into the field described by mask (unshifted)
// and pos, preserving everything outside the field.
func (r *R32) ReplaceBits(bits, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | bits<<pos)
}

// Raw returns the stored value without running hooks.
func (r *R32) Raw() uint32 { return r.v }

// SetRaw stores v without running hooks.
func (r *R32) SetRaw(v uint32) { r.v = v }

// OnGet registers f to run before every Get. Hooks run in registration
// order.
func (r *R32) OnGet(f func()) { r.onGet = append(r.onGet, f) }

// OnSet registers f to run after every Set with the old and new values.
// Hooks run in registration order.
func (r *R32) OnSet(f func(old, new uint32)) { r.onSet = append(r.onSet, f) }
