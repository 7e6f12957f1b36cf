package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	cases := map[string]struct {
		input      string
		separators string
		want       []string
	}{
		"empty":               {"", WordSeparators, []string{}},
		"only separators":     {" \t \n ", WordSeparators, []string{}},
		"single word":         {"ls", WordSeparators, []string{"ls"}},
		"args":                {"ls -l /tmp", WordSeparators, []string{"ls", "-l", "/tmp"}},
		"runs collapse":       {"  ls \t\t-l   /tmp  ", WordSeparators, []string{"ls", "-l", "/tmp"}},
		"trailing newline":    {"echo hi\n", WordSeparators, []string{"echo", "hi"}},
		"search path":         {"/usr/bin:/bin", PathListSeparator, []string{"/usr/bin", "/bin"}},
		"empty path elements": {":/a::/b:", PathListSeparator, []string{"/a", "/b"}},
		"path colons only":    {":::", PathListSeparator, []string{}},
		"multiple separators": {"a,b;c", ",;", []string{"a", "b", "c"}},
		"unicode":             {"héllo wörld", WordSeparators, []string{"héllo", "wörld"}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got := Tokenize(tc.input, tc.separators)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
			for _, tok := range got {
				assert.NotEmpty(t, tok)
			}
		})
	}
}

func TestTokenizeOnlySeparatorsIsEmpty(t *testing.T) {
	for _, input := range []string{"", " ", "\t", "\n\n", " \t\r\n\v\f", strings.Repeat(" ", 100)} {
		assert.Empty(t, Tokenize(input, WordSeparators), "input %q", input)
	}
}

func TestTokenizeJoinRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		input string
		sep   string
	}{
		{"ls -l /tmp", " "},
		{"/usr/local/bin:/usr/bin:/bin", ":"},
		{"single", ":"},
		{"a b c d e f g", " "},
	} {
		assert.Equal(t, tc.input, strings.Join(Tokenize(tc.input, tc.sep), tc.sep))
	}
}

func TestSplitterFor(t *testing.T) {
	fields, err := SplitterFor("")
	require.NoError(t, err)
	got, err := fields(`echo 'a b'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "'a", "b'"}, got)

	quoted, err := SplitterFor(SplitModeQuoted)
	require.NoError(t, err)
	got, err = quoted(`echo 'a b' "c d" e\ f`)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "a b", "c d", "e f"}, got)

	_, err = quoted(`echo "unterminated`)
	assert.Error(t, err)

	_, err = SplitterFor("bogus")
	assert.Error(t, err)
}
