package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "secret123" {
		t.Fatalf("digest equals plaintext")
	}
	if !Verify("secret123", digest) {
		t.Fatalf("expected matching password to verify")
	}
	if Verify("secret124", digest) {
		t.Fatalf("expected non-matching password to fail")
	}
}

func TestHashSaltsPerCall(t *testing.T) {
	a, err := Hash("samepassword")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := Hash("samepassword")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct digests for equal inputs, got %q twice", a)
	}
	if !Verify("samepassword", a) || !Verify("samepassword", b) {
		t.Fatalf("both digests must verify against the original password")
	}
}

func TestVerifyMalformedDigest(t *testing.T) {
	for _, digest := range []string{"", "not-a-bcrypt-hash", "$2a$garbage"} {
		if Verify("whatever", digest) {
			t.Fatalf("malformed digest %q verified as true", digest)
		}
	}
}
