//go:build windows

package platform

import (
	"os"
	"syscall"
	"time"

	"github.com/jfmartin/renamebatch/pkg/models"
)

func creationTime(info os.FileInfo) (time.Time, models.TimestampKind, bool) {
	data, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, "", false
	}
	return time.Unix(0, data.CreationTime.Nanoseconds()), models.KindBirth, true
}
