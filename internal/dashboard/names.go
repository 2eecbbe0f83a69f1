package dashboard

import "course-dashboard/internal/domain"

// UnknownName is shown when a reference does not resolve or the record has no name.
const UnknownName = "—"

// NameIndex maps record ids to display names. Build it once per pass and
// resolve against it; never scan a collection per lookup.
type NameIndex struct {
	names map[string]string
}

// NewNameIndex indexes records by id using name to pick the display field.
func NewNameIndex[F any](records []domain.Record[F], name func(F) *string) NameIndex {
	idx := NameIndex{names: make(map[string]string, len(records))}
	for _, r := range records {
		n := UnknownName
		if v := name(r.Fields); v != nil && *v != "" {
			n = *v
		}
		idx.names[r.ID] = n
	}
	return idx
}

// Resolve returns the display name for id, or UnknownName.
func (x NameIndex) Resolve(id string) string {
	if n, ok := x.names[id]; ok {
		return n
	}
	return UnknownName
}

// ResolveRef resolves a reference field.
func (x NameIndex) ResolveRef(ref *string) string {
	id, ok := ExtractReferencedID(ref)
	if !ok {
		return UnknownName
	}
	return x.Resolve(id)
}

func participantName(f domain.ParticipantFields) *string { return f.Name }

func courseTitle(f domain.CourseFields) *string { return f.Title }
