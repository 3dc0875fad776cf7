package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/scout/internal/app"
)

func runMain(t *testing.T, args ...string) (app.Options, bool, string, error) {
	t.Helper()
	var got app.Options
	launched := false
	m := &Main{Launch: func(_ context.Context, opts app.Options) error {
		got = opts
		launched = true
		return nil
	}}
	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), args, &stdout, &stderr)
	return got, launched, stdout.String(), err
}

func TestRun_PassesFlagsThrough(t *testing.T) {
	opts, launched, _, err := runMain(t, "--api", "http://catalog:9000", "-q", "term life", "--config", "/tmp/scout.toml")
	require.NoError(t, err)
	require.True(t, launched)
	assert.Equal(t, "http://catalog:9000", opts.APIURL)
	assert.Equal(t, "term life", opts.Query)
	assert.Equal(t, "/tmp/scout.toml", opts.ConfigPath)
	assert.Empty(t, opts.Location)
}

func TestRun_PositionalLocation(t *testing.T) {
	opts, launched, _, err := runMain(t, "/?q=term+life")
	require.NoError(t, err)
	require.True(t, launched)
	assert.Equal(t, "/?q=term+life", opts.Location)
	assert.NotEmpty(t, opts.PrefsPath, "prefs path has a default")
}

func TestRun_HelpDoesNotLaunch(t *testing.T) {
	_, launched, out, err := runMain(t, "--help")
	require.NoError(t, err)
	assert.False(t, launched)
	assert.True(t, strings.Contains(out, "scout"), "help output: %q", out)
}

func TestRun_UnknownFlag(t *testing.T) {
	_, launched, _, err := runMain(t, "--bogus")
	require.Error(t, err)
	assert.False(t, launched)
}

func TestRun_LaunchErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	m := &Main{Launch: func(context.Context, app.Options) error { return boom }}
	err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, boom)
}
