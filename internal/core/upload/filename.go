package upload

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

	allowedExtensions = map[string]bool{"png": true, "jpg": true, "jpeg": true, "pdf": true}
	imageExtensions   = map[string]bool{"png": true, "jpg": true, "jpeg": true}

	windowsDeviceNames = map[string]bool{
		"CON": true, "AUX": true, "COM1": true, "COM2": true, "COM3": true, "COM4": true,
		"LPT1": true, "LPT2": true, "LPT3": true, "PRN": true, "NUL": true,
	}
)

// SecureFilename reduces a client-supplied name to a flat ASCII name that is
// safe to join onto a directory: accents are folded, path separators and
// whitespace runs become underscores, other characters are dropped and
// leading or trailing dots and underscores are trimmed. The result may be
// empty.
func SecureFilename(name string) string {
	decomposed := norm.NFKD.String(name)

	var b strings.Builder
	for _, r := range decomposed {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	name = b.String()

	name = strings.NewReplacer("/", " ", `\`, " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")

	if stem, _, _ := strings.Cut(name, "."); windowsDeviceNames[strings.ToUpper(stem)] {
		name = "_" + name
	}
	return name
}

// Extension returns the lower-case extension of name without the dot.
func Extension(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

// AllowedFile reports whether name has a png, jpg, jpeg or pdf extension.
func AllowedFile(name string) bool {
	return strings.Contains(name, ".") && allowedExtensions[Extension(name)]
}

func IsImage(name string) bool {
	return imageExtensions[Extension(name)]
}

func IsPDF(name string) bool {
	return Extension(name) == "pdf"
}

// Stem returns name without its extension.
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
