//go:build linux

package platform

import (
	"os"
	"syscall"
	"time"

	"github.com/jfmartin/renamebatch/pkg/models"
)

// linux has no birth time in stat(2); the inode change time is the closest
// creation-like timestamp available.
func creationTime(info os.FileInfo) (time.Time, models.TimestampKind, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, "", false
	}
	return time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec), models.KindChange, true
}
