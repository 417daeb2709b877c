package ruby2html

import (
	"regexp"
	"strings"
	"testing"
)

func TestRenderRuby(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		want         string
		wantContains []string
		wantNot      []string
	}{
		{
			name:  "single annotated line",
			input: "小(xiǎo) 红(hóng) 帽(mào)",
			want:  "<p><ruby>小<rt>xiǎo</rt></ruby><ruby>红<rt>hóng</rt></ruby><ruby>帽<rt>mào</rt></ruby></p>",
		},
		{
			name:  "plain text without annotations renders unchanged except spaces",
			input: "Hello world",
			want:  "<p>Helloworld</p>",
		},
		{
			name:  "annotated run of several characters",
			input: "你好(nǐ hǎo)",
			want:  "<p><ruby>你好<rt>nǐhǎo</rt></ruby></p>",
		},
		{
			name:  "blank-line-delimited blocks become separate paragraphs",
			input: "小(xiǎo)\n\n红(hóng)",
			want:  "<p><ruby>小<rt>xiǎo</rt></ruby></p>\n\n<p><ruby>红<rt>hóng</rt></ruby></p>",
		},
		{
			name:  "lines within one block stay in one paragraph",
			input: "小(xiǎo)\n红(hóng)",
			want:  "<p><ruby>小<rt>xiǎo</rt></ruby>\n<ruby>红<rt>hóng</rt></ruby></p>",
		},
		{
			name:  "empty input produces no blocks",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace-only input produces no blocks",
			input: "   \n\n  \n",
			want:  "",
		},
		{
			name:    "blank blocks never produce empty paragraphs",
			input:   "小(xiǎo)\n\n\n\n红(hóng)",
			wantNot: []string{"<p></p>"},
			wantContains: []string{
				"<ruby>小<rt>xiǎo</rt></ruby>",
				"<ruby>红<rt>hóng</rt></ruby>",
			},
		},
		{
			name:  "unmatched opening parenthesis stays literal",
			input: "开(kāi\n",
			want:  "<p>开(kāi</p>",
		},
		{
			name:  "stray closing parenthesis stays literal",
			input: "kāi)门(mén)",
			want:  "<p>kāi)<ruby>门<rt>mén</rt></ruby></p>",
		},
		{
			name:  "pronunciation stops at the first closing parenthesis",
			input: "门(mén)) extra",
			want:  "<p><ruby>门<rt>mén</rt></ruby>)extra</p>",
		},
		{
			name:  "non-Han base text is not annotated",
			input: "abc(def)",
			want:  "<p>abc(def)</p>",
		},
		{
			name:  "markup characters in passthrough text are escaped",
			input: "a<b & c",
			want:  "<p>a&lt;b&amp;c</p>",
		},
		{
			name:  "markup characters in pronunciation are escaped",
			input: "门(<mén>)",
			want:  "<p><ruby>门<rt>&lt;mén&gt;</rt></ruby></p>",
		},
		{
			name:  "windows line endings are normalized",
			input: "小(xiǎo)\r\n\r\n红(hóng)",
			want:  "<p><ruby>小<rt>xiǎo</rt></ruby></p>\n\n<p><ruby>红<rt>hóng</rt></ruby></p>",
		},
		{
			name:  "space-only lines inside a block are dropped",
			input: "小(xiǎo)\n   \n红(hóng)",
			want:  "<p><ruby>小<rt>xiǎo</rt></ruby>\n<ruby>红<rt>hóng</rt></ruby></p>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RenderRuby(tt.input)

			if tt.want != "" || (tt.wantContains == nil && tt.wantNot == nil) {
				if got != tt.want {
					t.Errorf("RenderRuby(%q) = %q, want %q", tt.input, got, tt.want)
				}
				return
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("RenderRuby(%q) missing %q in %q", tt.input, want, got)
				}
			}
			for _, notWant := range tt.wantNot {
				if strings.Contains(got, notWant) {
					t.Errorf("RenderRuby(%q) should not contain %q, got %q", tt.input, notWant, got)
				}
			}
		})
	}
}

func TestRenderRuby_IdempotentWithoutMatches(t *testing.T) {
	t.Parallel()

	// Text with no annotation pairs must render unchanged aside from
	// space removal and paragraph wrapping.
	inputs := []string{
		"plain ascii text",
		"中文没有注音",
		"numbers 123 and symbols #@!",
	}

	for _, input := range inputs {
		got := RenderRuby(input)
		want := "<p>" + strings.ReplaceAll(input, " ", "") + "</p>"
		if got != want {
			t.Errorf("RenderRuby(%q) = %q, want %q", input, got, want)
		}
	}
}

// tagPattern strips the generated ruby markup for round-trip checks.
var tagPattern = regexp.MustCompile(`<rt>[^<]*</rt>|</?ruby>|</?p>`)

func TestRenderRuby_RoundTrip(t *testing.T) {
	t.Parallel()

	// Stripping all ruby markup from a rendered block must yield the
	// base-text-only projection of the source: pronunciations gone,
	// spaces gone.
	inputs := []string{
		"小(xiǎo) 红(hóng) 帽(mào)",
		"从前(cóng qián) 有(yǒu) 一个(yí gè) 小girl",
		"你好(nǐ hǎo) world",
	}

	for _, input := range inputs {
		rendered := RenderRuby(input)
		stripped := tagPattern.ReplaceAllString(rendered, "")

		projection := rubyPattern.ReplaceAllString(input, "$1")
		projection = strings.ReplaceAll(projection, " ", "")

		if stripped != projection {
			t.Errorf("round trip for %q: got %q, want %q", input, stripped, projection)
		}
	}
}
