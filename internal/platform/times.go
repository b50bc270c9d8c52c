// Package platform resolves platform-dependent file timestamps.
//
// There is no portable creation time: darwin and windows expose a true birth
// time, linux only exposes the inode change time, and anything else falls
// back to the modification time. CreationTime reports which semantic was
// actually used so callers can surface it instead of guessing.
package platform

import (
	"os"
	"time"

	"github.com/jfmartin/renamebatch/pkg/models"
)

// CreationTime returns the best available creation-like timestamp for info,
// together with the kind of timestamp that was actually available.
func CreationTime(info os.FileInfo) (time.Time, models.TimestampKind) {
	if t, kind, ok := creationTime(info); ok {
		return t, kind
	}
	return info.ModTime(), models.KindModified
}
