//go:build !tinygo

package mmio

import "testing"

func TestBitOps(t *testing.T) {
	var r R32
	r.Set(0x00F0)
	r.SetBits(0x0003)
	if got := r.Get(); got != 0x00F3 {
		t.Fatalf("SetBits: got %#x, want 0xf3", got)
	}
	r.ClearBits(0x0012)
	if got := r.Get(); got != 0x00E1 {
		t.Fatalf("ClearBits: got %#x, want 0xe1", got)
	}
	if !r.HasBits(0x0001) || r.HasBits(0x0002) {
		t.Fatalf("HasBits wrong for %#x", r.Get())
	}
}

func TestReplaceBits(t *testing.T) {
	var r R32
	r.Set(0xFFFF_FFFF)
	r.ReplaceBits(0x1A, 0x3F, 8)
	if got := r.Get(); got != 0xFFFF_DAFF {
		t.Fatalf("ReplaceBits: got %#x, want 0xffffdaff", got)
	}
	// Field write must not disturb bits outside the mask.
	r.ReplaceBits(0, 0xF, 0)
	if got := r.Get(); got != 0xFFFF_DAF0 {
		t.Fatalf("ReplaceBits low nibble: got %#x", got)
	}
}

func TestHooksRunInOrder(t *testing.T) {
	var r R32
	var trace []string
	r.OnGet(func() { trace = append(trace, "get1") })
	r.OnGet(func() { trace = append(trace, "get2") })
	r.OnSet(func(old, new uint32) { trace = append(trace, "set") })

	r.SetRaw(7)
	if len(trace) != 0 {
		t.Fatalf("SetRaw ran hooks: %v", trace)
	}
	if r.Raw() != 7 {
		t.Fatalf("Raw: got %d", r.Raw())
	}
	r.Set(9) // Set does not read; only the set hook fires
	if r.Get() != 9 {
		t.Fatalf("Get: got %d", r.Get())
	}
	want := []string{"set", "get1", "get2"}
	if len(trace) != len(want) {
		t.Fatalf("trace %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace %v, want %v", trace, want)
		}
	}
}

func TestSetHookSeesOldAndNew(t *testing.T) {
	var r R32
	var gotOld, gotNew uint32
	r.OnSet(func(old, new uint32) { gotOld, gotNew = old, new })
	r.Set(3)
	r.SetBits(4)
	if gotOld != 3 || gotNew != 7 {
		t.Fatalf("hook saw old=%d new=%d, want 3/7", gotOld, gotNew)
	}
}
