package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPIServer(t *testing.T, failing bool) *httptest.Server {
	t.Helper()
	routes := map[string][]string{
		"/countries":                            {"India", "USA"},
		"/country=India/states":                 {"Karnataka", "Texas"},
		"/country=India/state=Karnataka/cities": {"Bangalore", "Mysore"},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		names, ok := routes[r.URL.EscapedPath()]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(names)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, srv *httptest.Server, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--base-url="+srv.URL, "--log-file=-", "--no-color"))

	err := execute(context.Background(), cmd)
	return stdout.String(), stderr.String(), err
}

func TestCountriesCommand(t *testing.T) {
	out, _, err := run(t, newAPIServer(t, false), "countries")
	require.NoError(t, err)
	assert.Contains(t, out, "  India\n  USA\n")
}

func TestStatesCommand(t *testing.T) {
	out, _, err := run(t, newAPIServer(t, false), "states", "India")
	require.NoError(t, err)
	assert.Contains(t, out, "States of India")
	assert.Contains(t, out, "Karnataka")
}

func TestCitiesCommand(t *testing.T) {
	out, _, err := run(t, newAPIServer(t, false), "cities", "India", "Karnataka")
	require.NoError(t, err)
	assert.Contains(t, out, "Bangalore")
	assert.Contains(t, out, "Mysore")
}

func TestCommandFailureUsesFixedMessage(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"countries"}, want: "Unable to load countries. Please try again later."},
		{args: []string{"states", "India"}, want: "Unable to load states for the selected country."},
		{args: []string{"cities", "India", "Karnataka"}, want: "Unable to load cities for the selected state."},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			out, errOut, err := run(t, newAPIServer(t, true), tt.args...)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestSelectCommand(t *testing.T) {
	out, _, err := run(t, newAPIServer(t, false), "select", "India", "Karnataka", "Bangalore")
	require.NoError(t, err)
	assert.Equal(t, "You selected Bangalore, Karnataka, India\n", out)
}

func TestSelectCommandRejectsUnknownName(t *testing.T) {
	_, errOut, err := run(t, newAPIServer(t, false), "select", "India", "Goa", "Panaji")
	require.Error(t, err)
	assert.Contains(t, errOut, `"Goa" is not a valid state`)
}

func TestInvalidConfigIsReported(t *testing.T) {
	_, errOut, err := run(t, newAPIServer(t, false), "countries", "--log-level=loud")
	require.Error(t, err)
	assert.Contains(t, errOut, "log_level")
}

func TestUsageErrorsAreReported(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing argument", args: []string{"states"}, want: "accepts 1 arg(s), received 0"},
		{name: "unknown flag", args: []string{"countries", "--bogus"}, want: "unknown flag: --bogus"},
		{name: "unknown command", args: []string{"nosuch"}, want: `unknown command "nosuch"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := run(t, newAPIServer(t, false), tt.args...)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "Error: "+tt.want)
			assert.Contains(t, errOut, "location-selector --help")
		})
	}
}

func TestFetchFailureIsReportedOnce(t *testing.T) {
	_, errOut, err := run(t, newAPIServer(t, true), "countries")
	require.Error(t, err)
	assert.NotContains(t, errOut, "Error:")
	assert.Equal(t, 1, strings.Count(errOut, "Unable to load countries"))
}
