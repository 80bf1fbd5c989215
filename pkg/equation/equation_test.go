package equation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSet(t *testing.T) {
	s := NewSet("X1", "L1")
	s.Add("X1") // duplicate, ignored
	s.Add("C1")

	if !s.Contains("X1") || !s.Contains("C1") {
		t.Error("Contains misses an added name")
	}
	if s.Contains("Y1") {
		t.Error("Contains reports an absent name")
	}
	if diff := cmp.Diff([]string{"X1", "L1", "C1"}, s.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestNilSet(t *testing.T) {
	var s *Set
	if s.Contains("X1") {
		t.Error("nil set contains a name")
	}
	if s.Names() != nil {
		t.Error("nil set has names")
	}
}
