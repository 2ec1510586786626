package version

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionFromLdflags(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "v1.4.0"
	assert.Equal(t, "v1.4.0", GetVersion())
	assert.True(t, IsRelease())
}

func TestGetShortVersion(t *testing.T) {
	origV, origC := Version, GitCommit
	defer func() { Version, GitCommit = origV, origC }()

	Version = "v1.4.0"
	GitCommit = "abcdef0123456"
	assert.Equal(t, "v1.4.0 (abcdef0)", GetShortVersion())
}

func TestParseBuildTime(t *testing.T) {
	assert.True(t, parseBuildTime("unknown").IsZero())
	assert.True(t, parseBuildTime("yesterday").IsZero())

	got := parseBuildTime("2024-05-01T10:00:00Z")
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), got)

	assert.False(t, parseBuildTime("2024-05-01 10:00:00").IsZero())
}

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
