package digest

import "testing"

func TestSum(t *testing.T) {
	r := Sum([]byte("hello"))

	// Known SHA-256 of "hello".
	wantSHA := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if r.SHA256 != wantSHA {
		t.Errorf("SHA256 = %s, want %s", r.SHA256, wantSHA)
	}
	if len(r.BLAKE3) != 64 {
		t.Errorf("BLAKE3 length = %d, want 64 hex chars", len(r.BLAKE3))
	}
}

func TestSum_Deterministic(t *testing.T) {
	a := Sum([]byte("same input"))
	b := Sum([]byte("same input"))
	if a != b {
		t.Error("identical input must produce identical digests")
	}

	c := Sum([]byte("different input"))
	if a.SHA256 == c.SHA256 || a.BLAKE3 == c.BLAKE3 {
		t.Error("different input must produce different digests")
	}
}

func TestSum_Empty(t *testing.T) {
	r := Sum(nil)
	// SHA-256 of the empty string.
	wantSHA := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if r.SHA256 != wantSHA {
		t.Errorf("SHA256 = %s, want %s", r.SHA256, wantSHA)
	}
}
