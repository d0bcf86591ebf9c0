package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_MapPath(t *testing.T) {
	cfg := Config{PathMapFrom: `E:\`, PathMapTo: "/Volumes/Seagate Exp/"}

	tests := []struct {
		name string
		cfg  Config
		in   string
		want string
	}{
		{"NoMapping", Config{}, `E:\Books\a.pdf`, `E:\Books\a.pdf`},
		{"WindowsToMac", cfg, `E:\Books\Orwell - 1984.pdf`, "/Volumes/Seagate Exp/Books/Orwell - 1984.pdf"},
		{"DriveLetterCase", cfg, `e:\x.pdf`, "/Volumes/Seagate Exp/x.pdf"},
		{"OtherPrefix", cfg, `D:\x.pdf`, `D:\x.pdf`},
		{"ShortPath", cfg, "E", "E"},
		{"UnixToUnix", Config{PathMapFrom: "/mnt/nas/", PathMapTo: "/data/"}, "/mnt/nas/a\\b.pdf", "/data/a\\b.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.MapPath(tt.in))
		})
	}
}
