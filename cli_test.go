package main

import (
	"bytes"
	"strings"
	"testing"
)

// runCommand executes a fresh root command with args and returns its stdout.
func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		t.Fatalf("command %v failed: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestEncryptDecrypt_Pipeline(t *testing.T) {
	const key = "10 10 10 10 10 10"

	out := runCommand(t, "encrypt", "ab", "--key", key)
	if !strings.Contains(out, "11 12 10 34 34") {
		t.Fatalf("encrypt output missing expected cipher digits:\n%s", out)
	}

	out = runCommand(t, "decrypt", "11 12 10 34 34", "--key", key)
	if !strings.Contains(out, "AB XX") {
		t.Fatalf("decrypt output missing recovered text:\n%s", out)
	}
}

func TestEncrypt_GeneratesKeyWhenUnset(t *testing.T) {
	out := runCommand(t, "encrypt", "hi")
	if !strings.Contains(out, "Key:") {
		t.Errorf("expected generated key in output:\n%s", out)
	}
	if !strings.Contains(out, "Cipher:") {
		t.Errorf("expected cipher in output:\n%s", out)
	}
}

func TestDecrypt_RequiresKey(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"decrypt", "01 02 03"})

	if err := root.Execute(); err == nil {
		t.Error("decrypt without a key source succeeded; want error")
	}
}

func TestNormalizeCommand(t *testing.T) {
	out := runCommand(t, "normalize", "Hello, world!")
	if !strings.Contains(out, "HELLO COMMA WORLD EXCLAMATION XX") {
		t.Errorf("unexpected normalize output:\n%s", out)
	}
}

func TestKeygenCommand(t *testing.T) {
	out := runCommand(t, "keygen", "--length", "8")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	last := lines[len(lines)-1]
	if got := len(strings.Fields(last)); got != 8 {
		t.Errorf("keygen printed %d digit groups; want 8\n%s", got, out)
	}
}

func TestTableCommand(t *testing.T) {
	out := runCommand(t, "table", "--pager=false")
	for _, want := range []string{"01    A", "27    А", "59    Я", "SEVEN", "COMMA"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}
