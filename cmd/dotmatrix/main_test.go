package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	app := newApp(stdout, stderr)
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"dotmatrix"}, args...))
	return stdout.String(), err
}

func requireExit(t *testing.T, err error, contains string) {
	t.Helper()
	var ec cli.ExitCoder
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, 1, ec.ExitCode())
	assert.Contains(t, ec.Error(), contains)
}

func TestCloud(t *testing.T) {
	out, err := run(t, "cloud")
	require.NoError(t, err)
	assert.Equal(t, "01040045024b0002\n", out)
}

func TestEffect(t *testing.T) {
	out, err := run(t, "effect", "hearts")
	require.NoError(t, err)
	frames, err := run(t, "inspect", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "450304\n", frames)

	out, err = run(t, "visualize", "2")
	require.NoError(t, err)
	frames, err = run(t, "inspect", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "450402\n", frames)

	_, err = run(t, "visualize", "disco")
	requireExit(t, err, "unknown visualization type")
}

func TestBrightness(t *testing.T) {
	out, err := run(t, "brightness", "--min", "0", "--max", "10", "5")
	require.NoError(t, err)
	assert.Equal(t, "0104007432aa0002\n", out)

	_, err = run(t, "brightness", "150")
	requireExit(t, err, "brightness out of range: 150")

	_, err = run(t, "brightness", "--min", "10", "--max", "10", "5")
	requireExit(t, err, "5 not in 10-10")
}

func TestWeather(t *testing.T) {
	out, err := run(t, "inspect", "0105005fff01640102")
	require.NoError(t, err)
	assert.Equal(t, "5fff01\n", out)

	out, err = run(t, "weather", "--type", "clear", "--", "-1")
	require.NoError(t, err)
	assert.Equal(t, "0105005fff01640102\n", out)

	_, err = run(t, "weather", "129")
	requireExit(t, err, "129")

	_, err = run(t, "weather", "--type", "sunny", "20")
	requireExit(t, err, "unknown weather type")
}

func TestScore(t *testing.T) {
	out, err := run(t, "score", "--", "-5", "1200")
	require.NoError(t, err)

	frames, err := run(t, "inspect", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "4506000000e703\n", frames)
}

func TestClock(t *testing.T) {
	out, err := run(t, "clock", "--style", "rainbow", "--color", "#ff8000")
	require.NoError(t, err)

	frames, err := run(t, "inspect", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "45000101"+"01000000"+"ff8000\n", frames)

	_, err = run(t, "clock", "--color", "nope")
	requireExit(t, err, "nope")
}

func TestRaw(t *testing.T) {
	out, err := run(t, "raw", "4502")
	require.NoError(t, err)
	assert.Equal(t, "01040045024b0002\n", out)

	out, err = run(t, "raw", "--text", "hi")
	require.NoError(t, err)
	frames, err := run(t, "inspect", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "6869\n", frames)
}

func TestConvert(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}
	m.Set(0, 0, color.NRGBA{0x00, 0x00, 0x00, 0xff})

	file := filepath.Join(t.TempDir(), "picture.png")
	b := new(bytes.Buffer)
	require.NoError(t, png.Encode(b, m))
	require.NoError(t, os.WriteFile(file, b.Bytes(), 0o644))

	out, err := run(t, "convert", "--workers", "1", file)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "# "+file, lines[0])

	shown, err := run(t, "show", file)
	require.NoError(t, err)
	assert.Equal(t, lines[1]+"\n", shown)

	frames, err := run(t, "inspect", lines[1])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(frames, "44000a0a04aa2d00000000"+"02"+"000000"+"ffffff"+"fe"))
}
