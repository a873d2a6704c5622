package pad

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "mixed punctuation sentence",
			input: "Hello, world!",
			want:  "HELLO COMMA WORLD EXCLAMATION XX",
		},
		{
			name:  "empty input",
			input: "",
			want:  "XX",
		},
		{
			name:  "whitespace-only input",
			input: "  ",
			want:  "XX",
		},
		{
			name:  "single digit spelled out",
			input: "7",
			want:  "SEVEN XX",
		},
		{
			name:  "digit run becomes one word per digit",
			input: "42",
			want:  "FOUR TWO XX",
		},
		{
			name:  "digits embedded in a word",
			input: "abc123def",
			want:  "ABC ONE TWO THREE DEF XX",
		},
		{
			name:  "cyrillic sentence",
			input: "Привет, мир!",
			want:  "ПРИВЕТ COMMA МИР EXCLAMATION XX",
		},
		{
			name:  "unknown characters dropped silently",
			input: "a@b",
			want:  "A B XX",
		},
		{
			name:  "periods map to X",
			input: "Wait...",
			want:  "WAIT X X X XX",
		},
		{
			name:  "terminator not duplicated",
			input: "box xx",
			want:  "BOX XX",
		},
		{
			name:  "question and dash words",
			input: "well-known?",
			want:  "WELL DASH KNOWN QUESTION XX",
		},
		{
			name:  "collapses repeated whitespace",
			input: "one \t two\n three",
			want:  "ONE TWO THREE XX",
		},
		{
			name:  "word of only unknown characters vanishes",
			input: "@@@ ok",
			want:  "OK XX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello, world!",
		"Привет, мир!",
		"",
		"abc 123",
		"Wait... what?",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want fixed point %q", input, twice, once)
		}
	}
}
