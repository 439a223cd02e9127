package lhef

// Versions lists the LHEF standard versions this module understands.
var Versions = []string{"1.0", "2.0", "3.0"}

// SupportedVersion reports whether v is one of the supported LHEF
// versions.
func SupportedVersion(v string) bool {
	switch v {
	case "1.0", "2.0", "3.0":
		return true
	}
	return false
}
