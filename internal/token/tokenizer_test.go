package token

import "testing"

func TestTokenizerOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected []Type
	}{
		{"cat file.txt", []Type{WORD, WORD, EOF}},
		{"cat file.txt | grep pattern", []Type{WORD, WORD, PIPE, WORD, WORD, EOF}},
		{`echo "hello world" > output.txt`, []Type{WORD, QUOTED_STRING, REDIRECT_OUT, WORD, EOF}},
		{"command1 && command2 || command3", []Type{WORD, AND, WORD, OR, WORD, EOF}},
		{"cat file1; cat file2", []Type{WORD, WORD, SEMICOLON, WORD, WORD, EOF}},
		{"sort << EOF", []Type{WORD, REDIRECT_HEREDOC, WORD, EOF}},
		{"wc >> out.txt", []Type{WORD, REDIRECT_APPEND, WORD, EOF}},
	}

	for _, test := range tests {
		tok := NewTokenizer(test.input)
		for i, expected := range test.expected {
			got, err := tok.NextToken()
			if err != nil {
				t.Fatalf("tokenizing %q: %v", test.input, err)
			}
			if got.Type != expected {
				t.Errorf("%q token %d: expected %v, got %v", test.input, i, expected, got.Type)
			}
		}
	}
}

func TestTokenizerQuoting(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		quote    rune
	}{
		{`"hello world"`, "hello world", '"'},
		{`'single quotes'`, "single quotes", '\''},
		{`"escaped \"quote\""`, `escaped "quote"`, '"'},
		{`"newline\nhere"`, "newline\nhere", '"'},
		{`'$NOT_EXPANDED'`, "$NOT_EXPANDED", '\''},
	}

	for _, test := range tests {
		tok := NewTokenizer(test.input)
		got, err := tok.NextToken()
		if err != nil {
			t.Fatalf("tokenizing %q: %v", test.input, err)
		}
		if got.Type != QUOTED_STRING {
			t.Fatalf("expected QUOTED_STRING for %q, got %v", test.input, got.Type)
		}
		if got.Value != test.expected {
			t.Errorf("expected %q for input %q, got %q", test.expected, test.input, got.Value)
		}
		if got.Quote != test.quote {
			t.Errorf("expected quote %q for input %q, got %q", test.quote, test.input, got.Quote)
		}
	}
}

func TestTokenizerUnterminatedQuote(t *testing.T) {
	_, err := TokenizeAll(`echo "unterminated`)
	if err == nil {
		t.Fatal("expected an error for an unterminated quote")
	}
}

func TestTokenizerRejectsBackground(t *testing.T) {
	_, err := TokenizeAll("sleep 1 &")
	if err == nil {
		t.Fatal("expected background execution to be rejected")
	}
}
