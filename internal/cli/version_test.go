package cli

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stampBuild sets the build metadata for one test.
func stampBuild(t *testing.T, v, c, d string) {
	t.Helper()
	pv, pc, pd := version, commit, date
	t.Cleanup(func() { version, commit, date = pv, pc, pd })
	SetVersionInfo(v, c, d)
}

func TestWriteVersionBlock(t *testing.T) {
	stampBuild(t, "0.4.0", "9f2c1e7", "2025-03-02T08:15:00Z")

	var buf bytes.Buffer
	writeVersion(&buf, false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "panelstat v0.4.0", lines[0])
	assert.Equal(t, "  commit   9f2c1e7", lines[1])
	assert.Equal(t, "  built    2025-03-02T08:15:00Z", lines[2])
	assert.Equal(t, "  go       "+runtime.Version(), lines[3])
	assert.Equal(t, "  platform "+runtime.GOOS+"/"+runtime.GOARCH, lines[4])
}

func TestWriteVersionShortIsBareRelease(t *testing.T) {
	stampBuild(t, "0.4.0", "9f2c1e7", "2025-03-02T08:15:00Z")

	var buf bytes.Buffer
	writeVersion(&buf, true)

	assert.Equal(t, "0.4.0\n", buf.String())
}

func TestWriteVersionLocalBuild(t *testing.T) {
	stampBuild(t, "dev", "none", "unknown")

	var buf bytes.Buffer
	writeVersion(&buf, false)

	assert.True(t, strings.HasPrefix(buf.String(), "panelstat dev\n"))
}

func TestReleaseLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"dev", "dev"},
		{"0.4.0", "v0.4.0"},
		{"v0.4.0", "v0.4.0"},
		{"0.5.0-rc.2", "v0.5.0-rc.2"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, releaseLabel(tt.in))
		})
	}
}

func TestVersionCommandShortFlag(t *testing.T) {
	stampBuild(t, "0.4.0", "9f2c1e7", "2025-03-02T08:15:00Z")

	flag := versionCmd.Flags().Lookup("short")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	t.Cleanup(func() {
		versionCmd.SetOut(nil)
		require.NoError(t, versionCmd.Flags().Set("short", "false"))
	})
	require.NoError(t, versionCmd.Flags().Set("short", "true"))
	require.NoError(t, versionCmd.RunE(versionCmd, nil))

	assert.Equal(t, "0.4.0\n", buf.String())
}
