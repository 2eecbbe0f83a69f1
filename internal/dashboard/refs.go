package dashboard

import "strings"

// ExtractReferencedID returns the id a reference field points to: the last
// path segment of the record URL. ok is false for a nil or empty reference.
func ExtractReferencedID(ref *string) (string, bool) {
	if ref == nil {
		return "", false
	}
	s := strings.TrimSpace(*ref)
	if s == "" {
		return "", false
	}
	id := s[strings.LastIndex(s, "/")+1:]
	if id == "" {
		return "", false
	}
	return id, true
}
