package health

import "os"

// IsDocker returns true if the program runs in a Docker container.
func IsDocker() (ok bool) {
	for _, marker := range []string{"isdocker", "/.dockerenv"} {
		_, err := os.Stat(marker)
		if err == nil {
			return true
		}
	}
	return false
}
