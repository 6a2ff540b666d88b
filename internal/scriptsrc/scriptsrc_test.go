package scriptsrc

import "testing"

func TestParseClassifiesLines(t *testing.T) {
	content := "# a comment\n\nalias ll=ls -la\nexport NAME=\"value with spaces\"\nexport SINGLE='quoted'\nrandom command here\n"
	result := Parse(content)

	if result.AliasCount != 1 {
		t.Errorf("expected 1 alias, got %d", result.AliasCount)
	}
	if result.ExportCount != 2 {
		t.Errorf("expected 2 exports, got %d", result.ExportCount)
	}
	if result.IgnoredCount != 1 {
		t.Errorf("expected 1 ignored command, got %d", result.IgnoredCount)
	}

	var sawEmpty, sawComment bool
	for _, line := range result.Lines {
		if line.Kind == LineEmpty {
			sawEmpty = true
		}
		if line.Kind == LineComment {
			sawComment = true
		}
	}
	if !sawEmpty || !sawComment {
		t.Error("expected to see both empty and comment lines classified")
	}
}

func TestParseQuoteVariants(t *testing.T) {
	result := Parse("export A=\"double\"\nexport B='single'\nexport C=bare\n")
	var values []string
	for _, line := range result.Lines {
		if line.Kind == LineExport {
			values = append(values, line.Value)
		}
	}
	want := []string{"double", "single", "bare"}
	if len(values) != len(want) {
		t.Fatalf("expected %v, got %v", want, values)
	}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("value %d: expected %q, got %q", i, want[i], values[i])
		}
	}
}

func TestParseCollectsErrorsWithoutAborting(t *testing.T) {
	result := Parse("alias badnoequals\nalias good=echo hi\n")
	if result.Lines[0].Err == nil {
		t.Error("expected an error on the malformed alias line")
	}
	if result.AliasCount != 2 {
		t.Errorf("expected both alias lines counted even with an error, got %d", result.AliasCount)
	}
	if result.Lines[1].Err != nil {
		t.Errorf("expected the second line to parse cleanly, got %v", result.Lines[1].Err)
	}
}
