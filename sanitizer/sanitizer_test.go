package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizerPolicies(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		policy   PolicyPreset
		expected string
	}{
		{
			name:     "raw passes through",
			input:    "hello\x00world\n",
			policy:   PolicyRaw,
			expected: "hello\x00world\n",
		},
		{
			name:     "txt hex encodes null byte",
			input:    "test\x00data",
			policy:   PolicyTxt,
			expected: "test<00>data",
		},
		{
			name:     "txt hex encodes control chars",
			input:    "bell\x07tab\x09form\x0c",
			policy:   PolicyTxt,
			expected: "bell<07>tab<09>form<0c>",
		},
		{
			name:     "txt preserves printable",
			input:    "Hello World 123!@#",
			policy:   PolicyTxt,
			expected: "Hello World 123!@#",
		},
		{
			name:     "txt hex encodes multi-byte control",
			input:    "line1\u0085line2",
			policy:   PolicyTxt,
			expected: "line1<c285>line2",
		},
		{
			name:     "txt preserves UTF-8",
			input:    "Hello 世界 ✓",
			policy:   PolicyTxt,
			expected: "Hello 世界 ✓",
		},
		{
			name:     "escape common control chars",
			input:    "line1\nline2\ttab\rreturn",
			policy:   PolicyEscape,
			expected: "line1\\nline2\\ttab\\rreturn",
		},
		{
			name:     "escape other control as unicode",
			input:    "a\x01b",
			policy:   PolicyEscape,
			expected: "a\\u0001b",
		},
		{
			name:     "shell strips metacharacters and spaces",
			input:    "rm -rf $(pwd); echo `id`",
			policy:   PolicyShell,
			expected: "rm-rfpwdechoid",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := New().Policy(tc.policy)
			assert.Equal(t, tc.expected, s.Sanitize(tc.input))
		})
	}
}

func TestSanitizerRuleOrder(t *testing.T) {
	// First matching rule wins, so tabs are stripped before the hex rule sees them
	s := New().
		Rule(FilterWhitespace, TransformStrip).
		Rule(FilterNonPrintable, TransformHexEncode)

	assert.Equal(t, "ab<00>c", s.Sanitize("a\tb\x00 c"))
}

func TestSanitizerUnknownPolicy(t *testing.T) {
	s := New().Policy("nope")
	assert.Equal(t, "x\x00y", s.Sanitize("x\x00y"))
	assert.False(t, IsPolicy("nope"))
	assert.True(t, IsPolicy("txt"))
}

func TestSanitizerReuse(t *testing.T) {
	s := New().Policy(PolicyTxt)
	first := s.Sanitize("one\x00")
	second := s.Sanitize("two")

	assert.Equal(t, "one<00>", first)
	assert.Equal(t, "two", second)
}
