package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBuildInfoDefaults(t *testing.T) {
	original := GetBuildInfoImpl
	defer func() { GetBuildInfoImpl = original }()

	GetBuildInfoImpl = func() (string, string, string) {
		return "1.2.3", "abc1234", "2026-07-31"
	}

	v, c, b := GetBuildInfo()
	assert.Equal(t, "1.2.3", v)
	assert.Equal(t, "abc1234", c)
	assert.Equal(t, "2026-07-31", b)
}

func TestCurrent(t *testing.T) {
	original := GetBuildInfoImpl
	defer func() { GetBuildInfoImpl = original }()

	GetBuildInfoImpl = func() (string, string, string) {
		return "1.2.3", "abc1234", "2026-07-31"
	}

	info := Current()
	assert.Equal(t, Info{Version: "1.2.3", CommitHash: "abc1234", BuildDate: "2026-07-31"}, info)
}
