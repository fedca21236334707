package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"hoteldesk/transport/cli"

	"github.com/stretchr/testify/assert"
)

func TestRun_InvalidChoiceRedisplaysMenu(t *testing.T) {
	out := &bytes.Buffer{}
	c := cli.NewWithIO(cli.DomainHandlers{}, strings.NewReader("99\n10\n"), out)

	c.Run(context.Background())

	assert.Contains(t, out.String(), "Invalid choice.")
	assert.Equal(t, 2, strings.Count(out.String(), "===== HOTEL BOOKING SYSTEM ====="))
	assert.Contains(t, out.String(), "Goodbye.")
}

func TestRun_NonNumericChoiceIsDiscarded(t *testing.T) {
	out := &bytes.Buffer{}
	c := cli.NewWithIO(cli.DomainHandlers{}, strings.NewReader("exit\n10\n"), out)

	c.Run(context.Background())

	assert.Contains(t, out.String(), "Please enter a valid whole number.")
	assert.Contains(t, out.String(), "Goodbye.")
}

func TestRun_ExhaustedInputEndsSession(t *testing.T) {
	out := &bytes.Buffer{}
	c := cli.NewWithIO(cli.DomainHandlers{}, strings.NewReader(""), out)

	c.Run(context.Background())

	assert.Contains(t, out.String(), "10. Exit")
	assert.NotContains(t, out.String(), "Goodbye.")
}
