package prefs

// list of preference keys that are no longer used but might still be present
// in an older preferences file.
var defunct = []string{
	"machine.randpins",
}

func isDefunct(s string) bool {
	for _, m := range defunct {
		if s == m {
			return true
		}
	}
	return false
}
