package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

var allowedAvatarExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// AllowedAvatarFile reports whether the upload's filename carries a permitted image extension.
func AllowedAvatarFile(filename string) bool {
	_, ok := allowedAvatarExts[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// AvatarFilename builds the stored name for a user's avatar: the owner's id as a
// collision-preventing prefix plus the sanitized original filename.
func AvatarFilename(userID uint, original string) string {
	return fmt.Sprintf("%d_%s", userID, SecureFilename(original))
}

// SecureFilename reduces an untrusted filename to a safe flat name: path
// components are stripped and anything outside [A-Za-z0-9._-] is replaced
// with an underscore.
func SecureFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		out = "file"
	}
	return out
}
