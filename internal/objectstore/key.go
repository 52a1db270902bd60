package objectstore

import (
	"path"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/resume-keeper/models"
)

const fallbackBasename = "resume"

// ObjectKey builds the storage key of an upload:
//
//	<folder>/<class>/<basename>-<unix millis>.<ext>
//
// basename is the client filename up to its first dot, reduced to letters,
// digits, '-' and '_'.
func ObjectKey(folder string, class models.ResourceClass, filename, contentType string, now time.Time) string {
	name := sanitizeBasename(filename) + "-" + strconv.FormatInt(now.UnixMilli(), 10)
	if ext := extensionFor(contentType, filename); ext != "" {
		name += "." + ext
	}

	folder = strings.Trim(folder, "/")
	if folder == "" {
		return path.Join(string(class), name)
	}
	return path.Join(folder, string(class), name)
}

func sanitizeBasename(filename string) string {
	// browsers on windows may send the full client path
	base := filename[strings.LastIndexAny(filename, `/\`)+1:]
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)), r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return fallbackBasename
	}
	return b.String()
}
