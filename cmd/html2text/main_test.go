package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattn/go-html2text"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStdio(t *testing.T) {
	out, _, err := execute(t, "<p>Hello</p>")
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", out)
}

func TestFiles(t *testing.T) {
	in := writeFile(t, "in.html", `<p><a href="http://x.com">click</a></p>`)
	out := filepath.Join(t.TempDir(), "out.txt")

	_, _, err := execute(t, "", in, out, "--footer-urls")
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "click[0]\n\n------\n\n[0] click http://x.com\n", string(b))
}

func TestConfig(t *testing.T) {
	config := writeFile(t, "options.yaml", "drop_links: true\ndrop_images: true\n")
	html := `<a href="http://x.com">click</a> <img alt="pic">`

	out, _, err := execute(t, html, "--config", config)
	require.NoError(t, err)
	assert.Equal(t, "click\n", out)

	out, _, err = execute(t, html, "--config", config, "--drop-links=false")
	require.NoError(t, err)
	assert.Equal(t, "[click](http://x.com)\n", out)

	bad := writeFile(t, "bad.yaml", "drop_link: true\n")
	_, _, err = execute(t, html, "--config", bad)
	var oerr *html2text.InvalidOptionError
	require.True(t, errors.As(err, &oerr))
	assert.Equal(t, "drop_link", oerr.Key)
}

func TestIgnoreErrors(t *testing.T) {
	_, _, err := execute(t, "<div><b>bold</div>")
	var merr *html2text.MalformedInputError
	require.True(t, errors.As(err, &merr))

	out, stderr, err := execute(t, "<div><b>bold</div>", "--ignore-errors")
	require.NoError(t, err)
	assert.Equal(t, "bold\n", out)
	assert.Contains(t, stderr, "recovered from malformed markup")
}

func TestWidthAndCharset(t *testing.T) {
	in := writeFile(t, "latin1.html", "<p>caf\xe9 caf\xe9 caf\xe9</p>")

	out, _, err := execute(t, "", in, "--charset", "iso-8859-1", "--width", "10")
	require.NoError(t, err)
	assert.Equal(t, "café café\ncafé\n", out)

	_, _, err = execute(t, "", in, "--charset", "klingon")
	assert.Error(t, err)
}
