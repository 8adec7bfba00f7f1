package entities

// MaxTypeListing caps the number of names kept for a type filter
const MaxTypeListing = 20

// TypeListing is a bounded, ordered list of creature names sharing a type
type TypeListing struct {
	Type  string
	Names []string
	// Total is the upstream collection size before truncation
	Total int
}

// Truncated reports whether upstream had more entries than were kept
func (l *TypeListing) Truncated() bool {
	return l.Total > len(l.Names)
}
