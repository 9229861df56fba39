package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
		dev     bool
	}{
		{name: "default", version: devVersion, want: "0.0.0-dev", dev: true},
		{name: "release", version: "1.4.2", want: "1.4.2"},
		{name: "leading v", version: "v2.0.0", want: "2.0.0"},
		{name: "prerelease", version: "1.0.0-rc.1", want: "1.0.0-rc.1"},
		{name: "garbage", version: "main", want: devVersion, dev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := version
			version = tt.version
			t.Cleanup(func() { version = old })

			assert.Equal(t, tt.want, GetVersion())
			assert.Equal(t, tt.dev, IsDev())
		})
	}
}

func TestGetCommit(t *testing.T) {
	assert.NotEmpty(t, GetCommit())
}
