package obj

import "testing"

func TestBufferGrowth(t *testing.T) {
	var b Buffer[int32]
	if b.Len() != 0 || b.Cap() != 0 {
		t.Fatalf("zero buffer = (len %d, cap %d), want (0, 0)", b.Len(), b.Cap())
	}

	b.Append(1)
	if b.Cap() != 32 {
		t.Fatalf("cap after first append = %d, want 32", b.Cap())
	}

	for i := int32(2); i <= 33; i++ {
		b.Append(i)
	}
	if b.Len() != 33 {
		t.Fatalf("len = %d, want 33", b.Len())
	}
	if b.Cap() != 48 {
		t.Fatalf("cap after overflowing 32 = %d, want 48", b.Cap())
	}
	for i := range b.Len() {
		if b.At(i) != int32(i+1) {
			t.Fatalf("At(%d) = %d, want %d", i, b.At(i), i+1)
		}
	}
}

func TestBufferAppend3KeepsTriplesWhole(t *testing.T) {
	var b Buffer[float32]
	for i := range 100 {
		b.Append3(float32(i), float32(i)+0.25, float32(i)+0.5)
		if b.Len()%3 != 0 {
			t.Fatalf("len %d is not a multiple of 3", b.Len())
		}
	}

	data := b.Data()
	if data[297] != 99 || data[299] != 99.5 {
		t.Fatalf("last triple = %v, want [99 99.25 99.5]", data[297:])
	}
}

func TestBufferNeverShrinks(t *testing.T) {
	var b Buffer[uint32]
	for range 40 {
		b.Append(3)
	}
	before := b.Cap()
	b.Append(3)
	if b.Cap() < before {
		t.Fatalf("cap shrank from %d to %d", before, b.Cap())
	}
}
