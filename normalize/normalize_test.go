package normalize

import "testing"

func TestNormalize_Basic(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello", "hello"},
		{"HELLO!", "hello"},
		{"보험기간:", "보험기간"},
		{"(주)", "주"},
		{"word-pair", "wordpair"},
		{"  spaced   out  ", "spaced out"},
	}

	for _, tt := range tests {
		got := Normalize(tt.in)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_MeaninglessTokens(t *testing.T) {
	meaningless := []string{
		"http://example.com",
		"www.example.org",
		"ftp://host",
		"회사.go.kr",
		"•",
		"●",
		"→",
		"③",
		"o",
		"O",
		"-",
		"—",
		"*",
		"5",
		"42",
		"",
		"   ",
	}

	for _, in := range meaningless {
		if got := Normalize(in); got != "" {
			t.Errorf("Normalize(%q) = %q, want empty", in, got)
		}
	}

	// Three-digit numbers are content, not page numbers.
	if got := Normalize("123"); got != "123" {
		t.Errorf("Normalize(%q) = %q, want %q", "123", got, "123")
	}

	// Single letters and Hangul syllables are kept.
	if got := Normalize("가"); got != "가" {
		t.Errorf("Normalize(%q) = %q, want %q", "가", got, "가")
	}
}

func TestExpandMagnitudes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1,000만", "10000000"},
		{"1조", "1000000000000"},
		{"3억", "300000000"},
		{"10,000,000", "10000000"},
		{"1,000만원", "10000000"},
		{"30,000,000원", "30000000"},
		{"2억5,000만", "200000000" + "50000000"},
		{"만세", "만세"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		got := ExpandMagnitudes(tt.in)
		if got != tt.want {
			t.Errorf("ExpandMagnitudes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpandMagnitudes_UnparsableFallsBack(t *testing.T) {
	// A numeral too large for int64 must be left unchanged rather than
	// aborting normalization of the token.
	in := "99999999999999999999조"
	if got := ExpandMagnitudes(in); got != in {
		t.Errorf("ExpandMagnitudes(%q) = %q, want input unchanged", in, got)
	}
}

func TestNormalize_UnitExpansionEquality(t *testing.T) {
	// "1,000만원" and "10000000" must normalize to equal strings so the
	// word aligner reports no difference for the pair.
	a := Normalize("1,000만원")
	b := Normalize("10000000")
	if a != b {
		t.Errorf("Normalize mismatch: %q vs %q", a, b)
	}
	if a == "" {
		t.Error("expected non-empty normalization")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello",
		"HELLO, World!",
		"보험기간: ××세",
		"1,000만원",
		"금액",
		"12.",
		"o",
		"3만개",
		"Ｆｕｌｌｗｉｄｔｈ１２３",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalize_FullwidthFolding(t *testing.T) {
	if got, want := Normalize("ＡＢＣ１２３"), "abc123"; got != want {
		t.Errorf("Normalize fullwidth = %q, want %q", got, want)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"안녕,하세요", []string{"안녕", "하세요"}},
		{"테스트, 확인", []string{"테스트", "확인"}},
		{"plain", []string{"plain"}},
		{"1,000만원", []string{"1,000만원"}},
		{"a,b,c", []string{"a", "b", "c"}},
		{",,", []string{",,"}},
	}

	for _, tt := range tests {
		got := Split(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("Split(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Split(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestNormalizeText(t *testing.T) {
	got := NormalizeText("  Hello,\n WORLD!  ")
	if got != "hello world" {
		t.Errorf("NormalizeText = %q, want %q", got, "hello world")
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize(" one  two\nthree ")
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize returned %d tokens, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}
