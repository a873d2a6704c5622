package pad

import (
	"errors"
	"slices"
	"testing"
)

func TestEncrypt(t *testing.T) {
	tests := []struct {
		name    string
		codes   []int
		key     []int
		want    []int
		wantErr error
	}{
		{
			name:  "wraps around the modulus",
			codes: []int{1, 2},
			key:   []int{99, 1},
			want:  []int{0, 3},
		},
		{
			name:  "excess key material ignored",
			codes: []int{5},
			key:   []int{10, 20, 30},
			want:  []int{15},
		},
		{
			name:  "empty message",
			codes: nil,
			key:   nil,
			want:  []int{},
		},
		{
			name:    "key shorter than message",
			codes:   []int{1, 2, 3},
			key:     []int{7},
			wantErr: ErrInsufficientKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encrypt(tt.codes, tt.key)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Encrypt() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Encrypt() unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Encrypt(%v, %v) = %v, want %v", tt.codes, tt.key, got, tt.want)
			}
		})
	}
}

func TestDecrypt(t *testing.T) {
	tests := []struct {
		name    string
		cipher  []int
		key     []int
		want    []int
		wantErr error
	}{
		{
			name:   "inverts the wraparound",
			cipher: []int{0, 3},
			key:    []int{99, 1},
			want:   []int{1, 2},
		},
		{
			name:    "key shorter than ciphertext",
			cipher:  []int{1, 2},
			key:     []int{50},
			wantErr: ErrInsufficientKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decrypt(tt.cipher, tt.key)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Decrypt() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decrypt() unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Decrypt(%v, %v) = %v, want %v", tt.cipher, tt.key, got, tt.want)
			}
		})
	}
}

func TestEncryptDecrypt_ModularTotality(t *testing.T) {
	// Every (code, key digit) pair in [0,99]² must round-trip exactly.
	for c := 0; c < Modulus; c++ {
		for k := 0; k < Modulus; k++ {
			cipher, err := Encrypt([]int{c}, []int{k})
			if err != nil {
				t.Fatalf("Encrypt(%d, %d): %v", c, k, err)
			}
			back, err := Decrypt(cipher, []int{k})
			if err != nil {
				t.Fatalf("Decrypt(%v, %d): %v", cipher, k, err)
			}
			if back[0] != c {
				t.Fatalf("round trip of code %d under key %d = %d", c, k, back[0])
			}
		}
	}
}

func TestEncryptMessage_RoundTrip(t *testing.T) {
	messages := []string{
		"Hello, world!",
		"Привет, мир!",
		"Meet at 7.",
		"",
	}

	for _, msg := range messages {
		codes := Encode(Normalize(msg))
		key, err := GenerateKey(len(codes) + 5)
		if err != nil {
			t.Fatalf("GenerateKey: %v", err)
		}

		cipher, err := EncryptMessage(msg, key)
		if err != nil {
			t.Fatalf("EncryptMessage(%q): %v", msg, err)
		}
		if len(cipher) != len(codes) {
			t.Errorf("cipher length = %d, want %d", len(cipher), len(codes))
		}

		got, err := DecryptMessage(cipher, key)
		if err != nil {
			t.Fatalf("DecryptMessage(%q): %v", msg, err)
		}
		want := Decode(codes)
		if got != want {
			t.Errorf("round trip of %q = %q, want %q", msg, got, want)
		}
	}
}

func TestEncryptMessageVerified(t *testing.T) {
	key, err := GenerateKey(200)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	cipher, err := EncryptMessageVerified("Hello, world!", key)
	if err != nil {
		t.Fatalf("EncryptMessageVerified: %v", err)
	}
	if len(cipher) == 0 {
		t.Fatal("EncryptMessageVerified returned empty cipher")
	}

	if _, err := EncryptMessageVerified("Hello, world!", []int{1}); !errors.Is(err, ErrInsufficientKey) {
		t.Errorf("short key error = %v, want %v", err, ErrInsufficientKey)
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	key, err := GenerateKey(100)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	if err := VerifyRoundTrip("check 1 2 3", key); err != nil {
		t.Errorf("VerifyRoundTrip: %v", err)
	}
}
