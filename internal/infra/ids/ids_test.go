package ids

import "testing"

func TestGenerator_NewID(t *testing.T) {
	g := New()

	id := g.NewID()
	if len(id) != 16 {
		t.Errorf("len(NewID()) = %d, want 16", len(id))
	}
	for _, r := range id {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			t.Errorf("NewID() = %q, contains non-hex character %q", id, r)
		}
	}
}

func TestGenerator_NewID_Unique(t *testing.T) {
	g := New()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.NewID()
		if seen[id] {
			t.Fatalf("duplicate ID %q after %d generations", id, i)
		}
		seen[id] = true
	}
}
