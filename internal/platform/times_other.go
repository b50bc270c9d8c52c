//go:build !linux && !darwin && !windows

package platform

import (
	"os"
	"time"

	"github.com/jfmartin/renamebatch/pkg/models"
)

func creationTime(info os.FileInfo) (time.Time, models.TimestampKind, bool) {
	return time.Time{}, "", false
}
