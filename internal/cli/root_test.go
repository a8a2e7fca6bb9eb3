package cli

import (
	"bytes"
	"testing"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRegistry builds a small synthetic registry whose runners record
// their invocation instead of printing.
func newTestRegistry(t *testing.T, ran *string) *lesson.Registry {
	t.Helper()
	mark := func(slug string) lesson.Runner {
		return lesson.RunnerFunc(func() { *ran = slug })
	}
	reg, err := lesson.NewRegistry(
		lesson.Descriptor{Number: 1, Slug: "hello_world", Title: "Hello, world", Runner: mark("hello_world")},
		lesson.Descriptor{Number: 2, Slug: "variables", Title: "Variables", Runner: mark("variables")},
	)
	require.NoError(t, err)
	return reg
}

func execute(t *testing.T, reg *lesson.Registry, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(reg)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootNoArgsShowsUsageAndSucceeds(t *testing.T) {
	var ran string
	out, err := execute(t, newTestRegistry(t, &ran))

	require.NoError(t, err, "bare invocation is a pass-through, not an error")
	assert.Contains(t, out, "Usage:")
	assert.Empty(t, ran, "no lesson may run")
}

func TestRootRunsLessonByNumber(t *testing.T) {
	var ran string
	_, err := execute(t, newTestRegistry(t, &ran), "2")

	require.NoError(t, err)
	assert.Equal(t, "variables", ran)
}

func TestRootRunsLessonBySlug(t *testing.T) {
	var ran string
	_, err := execute(t, newTestRegistry(t, &ran), "hello_world")

	require.NoError(t, err)
	assert.Equal(t, "hello_world", ran)
}

func TestRootUnknownSelectorFails(t *testing.T) {
	var ran string
	_, err := execute(t, newTestRegistry(t, &ran), "nonexistent_slug")

	require.Error(t, err)
	var nf *lesson.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "nonexistent_slug", nf.Selector)
	assert.Equal(t, "Lesson 'nonexistent_slug' not found", err.Error())
	assert.Empty(t, ran)
}

func TestRootListShowsRegistryTable(t *testing.T) {
	var ran string
	reg := newTestRegistry(t, &ran)
	out, err := execute(t, reg, "list")

	require.NoError(t, err)
	var want bytes.Buffer
	reg.List(&want)
	assert.Equal(t, want.String(), out)
	assert.Empty(t, ran, "listing must not run lessons")
}

func TestRootRunSubcommand(t *testing.T) {
	var ran string
	_, err := execute(t, newTestRegistry(t, &ran), "run", "1")

	require.NoError(t, err)
	assert.Equal(t, "hello_world", ran)
}

func TestRootVersionSubcommand(t *testing.T) {
	var ran string
	out, err := execute(t, newTestRegistry(t, &ran), "version")

	require.NoError(t, err)
	assert.Contains(t, out, "LeapLearn v"+Version)
}
