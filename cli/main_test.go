package main

import (
	"bytes"
	"context"
	"flagkit"
	assertion "github.com/stretchr/testify/assert"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

var uiLines = []string{
	"UI component is visible: true",
	"UI component is enabled: true",
	"UI component is visible: false",
	"UI component is enabled: false",
}

func demoOptions(t *testing.T, url string) *flagkit.Options {
	opts, err := flagkit.LoadOptions("")
	if err != nil {
		t.Fatal(err)
	}
	opts.URL = url
	opts.Operations.Delays = []time.Duration{time.Millisecond, 2 * time.Millisecond, 3 * time.Millisecond}
	return opts
}

func outputLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestRun(t *testing.T) {
	assert := assertion.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	buf := &bytes.Buffer{}
	assert.NoError(run(context.Background(), buf, demoOptions(t, srv.URL)))
	want := append([]string{
		"Success: {}",
		"All operations are complete",
		"Adjusted cache size: 512",
	}, uiLines...)
	assert.Equal(want, outputLines(buf))
}

func TestRunPending(t *testing.T) {
	assert := assertion.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	opts := demoOptions(t, srv.URL)
	opts.Operations.Delays[2] = time.Hour
	opts.Operations.Timeout = 50 * time.Millisecond
	buf := &bytes.Buffer{}
	assert.NoError(run(context.Background(), buf, opts))
	want := append([]string{
		"Server error: 503 Service Unavailable",
		"Some operations are still pending",
		"Adjusted cache size: 512",
	}, uiLines...)
	assert.Equal(want, outputLines(buf))
}

func TestRunInvalidCacheSize(t *testing.T) {
	assert := assertion.New(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	opts := demoOptions(t, srv.URL)
	opts.CacheSize = 0
	buf := &bytes.Buffer{}
	assert.Error(run(context.Background(), buf, opts))
	assert.Equal([]string{
		"Client error: 404 Not Found",
		"All operations are complete",
	}, outputLines(buf))
}
