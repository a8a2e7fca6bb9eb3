// Package commands tests for CLI command creation and dispatch helpers.
package commands

import (
	"bytes"
	"testing"

	"github.com/leapstack-labs/leaplearn/pkg/lesson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T, ran *int) *lesson.Registry {
	t.Helper()
	reg, err := lesson.NewRegistry(
		lesson.Descriptor{Number: 1, Slug: "first", Title: "First lesson",
			Runner: lesson.RunnerFunc(func() { *ran = 1 })},
		lesson.Descriptor{Number: 2, Slug: "second", Title: "Second lesson",
			Runner: lesson.RunnerFunc(func() { *ran = 2 })},
	)
	require.NoError(t, err)
	return reg
}

func TestRunLesson(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		wantRan  int
		wantErr  bool
	}{
		{name: "by number", selector: "2", wantRan: 2},
		{name: "by slug", selector: "first", wantRan: 1},
		{name: "leading zero number", selector: "01", wantRan: 1},
		{name: "unknown", selector: "third", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ran int
			err := RunLesson(testRegistry(t, &ran), tt.selector)
			if tt.wantErr {
				require.Error(t, err)
				var nf *lesson.NotFoundError
				assert.ErrorAs(t, err, &nf)
				assert.Zero(t, ran)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRan, ran)
		})
	}
}

func TestNewListCommand(t *testing.T) {
	var ran int
	reg := testRegistry(t, &ran)
	cmd := NewListCommand(reg)

	assert.Equal(t, "list", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "01  first                    First lesson\n02  second                   Second lesson\n", buf.String())

	// Listing is stable: a second execution produces identical output.
	again := new(bytes.Buffer)
	cmd.SetOut(again)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, buf.String(), again.String())
}

func TestNewRunCommand(t *testing.T) {
	var ran int
	cmd := NewRunCommand(testRegistry(t, &ran))

	assert.Equal(t, "run <lesson>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	cmd.SetArgs([]string{"second"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	require.NoError(t, cmd.Execute())
	assert.Equal(t, 2, ran)
}

func TestNewRunCommandRequiresOneArg(t *testing.T) {
	var ran int
	cmd := NewRunCommand(testRegistry(t, &ran))
	cmd.SetArgs([]string{})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	assert.Error(t, cmd.Execute())
}

func TestNewBrowseCommand(t *testing.T) {
	var ran int
	cmd := NewBrowseCommand(testRegistry(t, &ran))

	assert.Equal(t, "browse", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "release", version: "0.1.0", want: "LeapLearn v0.1.0"},
		{name: "dev", version: "dev", want: "LeapLearn vdev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewVersionCommand(tt.version)
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)

			require.NoError(t, cmd.Execute())
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}
