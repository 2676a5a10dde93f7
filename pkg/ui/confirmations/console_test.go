package confirmations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirm(t *testing.T, input string) (bool, string) {
	t.Helper()
	var out strings.Builder
	dialog := NewDialog(strings.NewReader(input), &out)
	ok, err := dialog.ConfirmDeletion("/scan", nil)
	require.NoError(t, err)
	return ok, out.String()
}

func TestConfirmDeletionAcceptsYes(t *testing.T) {
	ok, prompt := confirm(t, "yes\n")
	assert.True(t, ok)
	assert.Contains(t, prompt, "permanently delete")
}

func TestConfirmDeletionCaseInsensitive(t *testing.T) {
	for _, input := range []string{"YES\n", "Yes\n", "  yes  \n"} {
		ok, _ := confirm(t, input)
		assert.True(t, ok, "input %q", input)
	}
}

func TestConfirmDeletionDeclines(t *testing.T) {
	for _, input := range []string{"no\n", "y\n", "yess\n", "\n", ""} {
		ok, _ := confirm(t, input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestConfirmDeletionMentionsThreshold(t *testing.T) {
	var out strings.Builder
	threshold := 0.95
	dialog := NewDialog(strings.NewReader("no\n"), &out)
	ok, err := dialog.ConfirmDeletion("/scan", &threshold)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "95.0%")
}
