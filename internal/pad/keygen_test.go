package pad

import "testing"

func TestGenerateKey(t *testing.T) {
	key, err := GenerateKey(500)
	if err != nil {
		t.Fatalf("GenerateKey(500): %v", err)
	}
	if len(key) != 500 {
		t.Fatalf("len = %d, want 500", len(key))
	}
	for i, d := range key {
		if d < 0 || d >= Modulus {
			t.Fatalf("digit %d at index %d outside [0,%d)", d, i, Modulus)
		}
	}
}

func TestGenerateKey_ZeroLength(t *testing.T) {
	key, err := GenerateKey(0)
	if err != nil {
		t.Fatalf("GenerateKey(0): %v", err)
	}
	if len(key) != 0 {
		t.Errorf("len = %d, want 0", len(key))
	}
}

func TestGenerateKey_NegativeLength(t *testing.T) {
	if _, err := GenerateKey(-1); err == nil {
		t.Error("GenerateKey(-1) = nil error; want error")
	}
}

func TestGenerateKey_NotConstant(t *testing.T) {
	a, err := GenerateKey(64)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	b, err := GenerateKey(64)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("two generated pads are identical; entropy source suspect")
	}
}
