package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/creational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	assert.Equal(t, "creational version "+strings.TrimSpace(creational.Version)+"\n", out)
}

func TestExplainCommand_List(t *testing.T) {
	out := execute(t, "explain")
	for _, info := range creational.Patterns() {
		assert.Contains(t, out, string(info.ID))
	}
}

func TestFactoryCommand(t *testing.T) {
	out := execute(t, "factory", "--type", "beef", "--no-color", "--log-level", "off")
	assert.Equal(t, "Preparing a BeefHamburger 🍔🥩\n", out)
}

func TestPrototypeCommand_Flags(t *testing.T) {
	out := execute(t, "prototype", "--title", "Patterns, revised", "--no-color")
	assert.Contains(t, out, "Title: Patterns, revised")
	assert.Contains(t, out, "Author: Isaac Vega")
}

type closeRecorder struct{ closed int }

func (c *closeRecorder) Close() error {
	c.closed++
	return nil
}

func TestReportError_ClosesResources(t *testing.T) {
	var out bytes.Buffer
	a, b := &closeRecorder{}, &closeRecorder{}

	reportError(&out, errors.New("invalid option: \"pork\""), a, b)

	assert.Equal(t, "Error: invalid option: \"pork\"\n", out.String())
	assert.Equal(t, 1, a.closed)
	assert.Equal(t, 1, b.closed)
}
