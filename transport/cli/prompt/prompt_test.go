package prompt_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"hoteldesk/internal/domains/booking/model"
	"hoteldesk/transport/cli/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrompter(input string) (*prompt.Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return prompt.New(strings.NewReader(input), out), out
}

func TestReadNonEmpty(t *testing.T) {
	t.Run("returns trimmed first non-blank line", func(t *testing.T) {
		p, _ := newPrompter("  Ada Lovelace  \n")

		got, err := p.ReadNonEmpty("Name: ")

		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", got)
	})

	t.Run("reprompts past blank and whitespace-only lines", func(t *testing.T) {
		p, out := newPrompter("\n   \nBob\n")

		got, err := p.ReadNonEmpty("Name: ")

		require.NoError(t, err)
		assert.Equal(t, "Bob", got)
		assert.Equal(t, 2, strings.Count(out.String(), "Input cannot be blank"))
	})

	t.Run("exhausted input returns EOF", func(t *testing.T) {
		p, _ := newPrompter("")

		_, err := p.ReadNonEmpty("Name: ")

		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestReadInt(t *testing.T) {
	t.Run("discards invalid tokens until a number arrives", func(t *testing.T) {
		p, out := newPrompter("abc\n12.5\n42\n")

		got, err := p.ReadInt("ID: ")

		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 2, strings.Count(out.String(), "valid whole number"))
	})

	t.Run("accepts negative numbers", func(t *testing.T) {
		p, _ := newPrompter("-3\n")

		got, err := p.ReadInt("ID: ")

		require.NoError(t, err)
		assert.Equal(t, -3, got)
	})
}

func TestReadEmail(t *testing.T) {
	t.Run("blank then malformed then accepted", func(t *testing.T) {
		p, out := newPrompter("\nnot-an-email\nweak@check.\n")

		got, err := p.ReadEmail("Email: ")

		require.NoError(t, err)
		// The check only demands "@" and "." somewhere in the string.
		assert.Equal(t, "weak@check.", got)
		assert.Contains(t, out.String(), "Email cannot be blank.")
		assert.Contains(t, out.String(), "valid-looking email")
	})

	t.Run("rejects strings missing a dot", func(t *testing.T) {
		p, out := newPrompter("a@b\na@b.c\n")

		got, err := p.ReadEmail("Email: ")

		require.NoError(t, err)
		assert.Equal(t, "a@b.c", got)
		assert.Equal(t, 1, strings.Count(out.String(), "valid-looking email"))
	})
}

func TestReadOptional(t *testing.T) {
	t.Run("empty answer is accepted as no value", func(t *testing.T) {
		p, out := newPrompter("\n")

		got, err := p.ReadOptional("Phone: ")

		require.NoError(t, err)
		assert.Equal(t, "", got)
		assert.Equal(t, "Phone: ", out.String())
	})
}

func TestReadDate(t *testing.T) {
	t.Run("prints format hint until a parseable date arrives", func(t *testing.T) {
		p, out := newPrompter("10/11/2025\n2025-13-01\n2025-11-10\n")

		got, err := p.ReadDate("Start Date (YYYY-MM-DD): ")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), got)
		assert.Equal(t, 2, strings.Count(out.String(), "Invalid date format"))
	})
}

func TestReadStatus(t *testing.T) {
	t.Run("case-insensitive match returns canonical casing", func(t *testing.T) {
		p, _ := newPrompter("checked-in\n")

		got, err := p.ReadStatus("New Status: ")

		require.NoError(t, err)
		assert.Equal(t, model.StatusCheckedIn, got)
	})

	t.Run("prints the allowed list on no match", func(t *testing.T) {
		p, out := newPrompter("Archived\nCancelled\n")

		got, err := p.ReadStatus("New Status: ")

		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, got)
		assert.Contains(t, out.String(), "Pending, Confirmed, Checked-In, Completed, Cancelled")
	})
}
