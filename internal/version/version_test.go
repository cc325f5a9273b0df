package version

import (
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveVersion(t *testing.T) {
	assert.Equal(t, "v1.0.0", resolveVersion("v1.0.0", nil))
	assert.Equal(t, "v0.3.1", resolveVersion("dev", map[string]string{"main.version": "v0.3.1"}))
	assert.Equal(t, "dev-abcdef1", resolveVersion("dev", map[string]string{
		"main.version": "(devel)",
		"vcs.revision": "abcdef1234567",
	}))
	assert.Equal(t, "dev", resolveVersion("", map[string]string{}))
}

func TestResolveCommit(t *testing.T) {
	assert.Equal(t, "1234567", resolveCommit("1234567", nil))
	assert.Equal(t, "feedbee", resolveCommit("unknown", map[string]string{"vcs.revision": "feedbee"}))
	assert.Equal(t, "unknown", resolveCommit("unknown", map[string]string{}))
}

func TestParseBuildTime(t *testing.T) {
	want := time.Date(2022, 12, 3, 5, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(parseBuildTime("2022-12-03T05:00:00Z")))
	assert.True(t, want.Equal(parseBuildTime("2022-12-03 05:00:00")))
	assert.True(t, parseBuildTime("unknown").IsZero())
	assert.True(t, parseBuildTime("yesterday").IsZero())
}

func TestBuildInfoShort(t *testing.T) {
	assert.Equal(t, "v1.0.0 (abcdef1)", (&BuildInfo{Version: "v1.0.0", GitCommit: "abcdef1234"}).Short())
	assert.Equal(t, "dev-abcdef1", (&BuildInfo{Version: "dev", GitCommit: "abcdef1234"}).Short())
	assert.Equal(t, "v1.0.0", (&BuildInfo{Version: "v1.0.0", GitCommit: "unknown"}).Short())
}

func TestBuildInfoDetailed(t *testing.T) {
	info := &BuildInfo{
		Version:   "v1.0.0",
		GitCommit: "unknown",
		GoVersion: "go1.24.4",
		Platform:  "linux/amd64",
		Release:   true,
	}
	detailed := info.Detailed()
	assert.Contains(t, detailed, "Version: v1.0.0")
	assert.NotContains(t, detailed, "Commit:")
	assert.True(t, strings.HasSuffix(detailed, "Build type: release"))
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.NotEmpty(t, info.Version)
}
