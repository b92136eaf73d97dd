package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-rect/rect"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestParseRectArg(t *testing.T) {
	r, err := parseRectArg("0,1,0,1:0,0,1,1")
	require.NoError(t, err)
	assert.Equal(t, rect.New(0, 0, 1, 1), r)

	r, err = parseRectArg(" 1.5, -2 ,3,4e1 : 0,0,0,0 ")
	require.NoError(t, err)
	assert.Equal(t, [4]float32{1.5, -2, 3, 40}, r.X)
}

func TestParseRectArgErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"missing colon", "0,1,0,1"},
		{"short x", "0,1,0:0,0,1,1"},
		{"long y", "0,1,0,1:0,0,1,1,2"},
		{"not a number", "0,a,0,1:0,0,1,1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRectArg(tt.in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.in)
		})
	}

	_, err := parseRectArg("0,1,0:0,0,1,1")
	assert.ErrorIs(t, err, errCornerCount)
}

func TestDecodeRects(t *testing.T) {
	doc := `
- x: [0, 1, 0, 1]
  y: [0, 0, 1, 1]
- x: [2, 6, 2, 6]
  y: [3, 3, 8, 8]
`
	rs, err := decodeRects(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, rect.New(0, 0, 1, 1), rs[0])
	assert.Equal(t, rect.New(2, 3, 4, 5), rs[1])
}

func TestDecodeRectsEmpty(t *testing.T) {
	rs, err := decodeRects(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rs)
}

func TestDecodeRectsBadCornerCount(t *testing.T) {
	_, err := decodeRects(strings.NewReader("- x: [0, 1]\n  y: [0, 0, 1, 1]\n"))
	require.ErrorIs(t, err, errCornerCount)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := rect.Rects{rect.New(0, 0, 1, 1), rect.New(-3, 4, 2.5, 0.5)}

	var buf bytes.Buffer
	require.NoError(t, encodeRects(&buf, in))
	assert.Contains(t, buf.String(), "x: [0, 1, 0, 1]")

	out, err := decodeRects(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRotateCommandTable(t *testing.T) {
	out, err := execute(t, "rotate", "--angle", "90", "--verify", "0,1,0,1:0,0,1,1")
	require.NoError(t, err)

	assert.Contains(t, out, "kernel: ")
	assert.Contains(t, out, "Rigidity err")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6) // kernel, header, 4 corners
	assert.Equal(t, []string{"0", "0", "1.000000", "0.000000"}, strings.Fields(lines[2])[:4])
	assert.Equal(t, []string{"0", "3", "0.000000", "1.000000"}, strings.Fields(lines[5])[:4])
}

func TestRotateCommandGenericYAML(t *testing.T) {
	out, err := execute(t, "--generic", "rotate", "--angle", "180", "--format", "yaml", "0,2,0,2:0,0,2,2")
	require.NoError(t, err)

	rs, err := decodeRects(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.InDeltaSlice(t, []float32{2, 0, 2, 0}, rs[0].X[:], 1e-5)
	assert.InDeltaSlice(t, []float32{2, 2, 0, 0}, rs[0].Y[:], 1e-5)
}

func TestRotateCommandGenericUsesScalarKernel(t *testing.T) {
	out, err := execute(t, "--generic", "rotate", "--angle", "10", "0,1,0,1:0,0,1,1")
	require.NoError(t, err)
	assert.Contains(t, out, "kernel: generic")
}

func TestRotateCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rects.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- x: [0, 1, 0, 1]\n  y: [0, 0, 1, 1]\n"), 0o600))

	out, err := execute(t, "rotate", "--angle", "90", "--format", "yaml", "--file", path, "0,1,0,1:0,0,1,1")
	require.NoError(t, err)

	rs, err := decodeRects(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, rs[0], rs[1])
}

func TestRotateCommandErrors(t *testing.T) {
	_, err := execute(t, "rotate", "--angle", "90")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rectangles")

	_, err = execute(t, "rotate", "--format", "json", "0,1,0,1:0,0,1,1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")

	_, err = execute(t, "rotate", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open rects file")
}

func TestInfoCommand(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)

	for _, key := range []string{"Architecture:", "Vec4:", "Kernel:", "vek32 acceleration:"} {
		assert.Contains(t, out, key)
	}
}

func TestInfoCommandGeneric(t *testing.T) {
	out, err := execute(t, "--generic", "info")
	require.NoError(t, err)
	assert.Regexp(t, `Kernel:\s+generic`, out)
	assert.Regexp(t, `Force generic:\s+yes`, out)
}

func TestKernelsCommand(t *testing.T) {
	out, err := execute(t, "kernels")
	require.NoError(t, err)
	assert.Contains(t, out, "generic")
	assert.Contains(t, out, "Priority")
}
