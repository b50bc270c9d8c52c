//go:build darwin

package platform

import (
	"os"
	"syscall"
	"time"

	"github.com/jfmartin/renamebatch/pkg/models"
)

func creationTime(info os.FileInfo) (time.Time, models.TimestampKind, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, "", false
	}
	return time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec), models.KindBirth, true
}
