package acsearch

import (
	"reflect"
	"testing"
)

func TestOutputStoreOwn(t *testing.T) {
	s := newOutputStore(16)
	if err := s.Put(7, 2); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	kw, ok := s.Own(7)
	if !ok || kw != 2 {
		t.Fatalf("own output of 7: got (%d,%v), want (2,true)", kw, ok)
	}
	if _, ok := s.Own(8); ok {
		t.Fatalf("expected no output at state 8")
	}
	if err := s.Put(7, 5); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}
	if kw, _ := s.Own(7); kw != 5 {
		t.Fatalf("own output after overwrite: got %d, want 5", kw)
	}
}

func TestOutputStoreOutOfRange(t *testing.T) {
	s := newOutputStore(4)
	if err := s.Put(4, 0); err == nil {
		t.Fatalf("expected error for state out of range")
	}
	if err := s.Put(0, 0); err == nil {
		t.Fatalf("expected error for state 0")
	}
	if s.First(99) != 0 {
		t.Fatalf("expected empty chain for unknown state")
	}
}

func TestOutputStoreChain(t *testing.T) {
	// states: 1 = root, 2 = "e" (kw 0), 3 = "h", 4 = "he" (kw 1),
	// 5 = "s", 6 = "sh", 7 = "she" (kw 2)
	s := newOutputStore(8)
	for state, kw := range map[StateID]int32{2: 0, 4: 1, 7: 2} {
		if err := s.Put(state, kw); err != nil {
			t.Fatal(err)
		}
	}
	// breadth-first
	s.SetLink(2, 1)
	s.SetLink(3, 1)
	s.SetLink(5, 1)
	s.SetLink(4, 2)
	s.SetLink(6, 3)
	s.SetLink(7, 4)
	tests := []struct {
		state StateID
		want  []int32
	}{
		{state: 7, want: []int32{2, 1, 0}},
		{state: 4, want: []int32{1, 0}},
		{state: 6, want: nil},
		{state: 1, want: nil},
	}
	for _, tt := range tests {
		if got := s.Collect(tt.state, nil); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("outputs of %d: got %v, want %v", tt.state, got, tt.want)
		}
	}
}
