package hash

import (
	"encoding/hex"
	"testing"
)

func TestDigest_FixedSizeHex(t *testing.T) {
	for _, pw := range []string{"", "a", "correct horse battery staple"} {
		d := Digest(pw)
		if len(d) != DigestLen {
			t.Fatalf("Digest(%q) length = %d, want %d", pw, len(d), DigestLen)
		}
		if _, err := hex.DecodeString(d); err != nil {
			t.Fatalf("Digest(%q) is not hex: %v", pw, err)
		}
	}
}

func TestDigest_Deterministic(t *testing.T) {
	if Digest("s3cret") != Digest("s3cret") {
		t.Fatalf("digest must be deterministic")
	}
	if Digest("s3cret") == Digest("s3cret ") {
		t.Fatalf("different passwords must not collide")
	}
}

func TestMatches(t *testing.T) {
	stored := Digest("correct1")

	if !Matches("correct1", stored) {
		t.Fatalf("expected match for the original password")
	}
	if Matches("wrong1", stored) {
		t.Fatalf("expected mismatch for a different password")
	}
	if Matches("correct1", "correct1") {
		t.Fatalf("clear text must never match as a digest")
	}
}
