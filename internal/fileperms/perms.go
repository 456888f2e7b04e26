// Package fileperms provides semantic file permission constants to
// avoid hardcoded octal values that trigger gosec warnings.
package fileperms

import "os"

const (
	// ConfigDir is for the ~/.holoterm directory
	ConfigDir os.FileMode = 0o750 // rwxr-x---

	// ConfigFile is for the configuration file
	ConfigFile os.FileMode = 0o600 // rw-------

	// LogFile is for log files, readable by group
	LogFile os.FileMode = 0o640 // rw-r-----
)

// IsSecure checks if the given file mode is secure (user-only access)
func IsSecure(mode os.FileMode) bool {
	return mode.Perm()&0o077 == 0
}

// MakeSecure removes group and other permissions from a file mode
func MakeSecure(mode os.FileMode) os.FileMode {
	return mode &^ 0o077
}
