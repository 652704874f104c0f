package pagination

// Metadata is the page information returned alongside API collections.
type Metadata struct {
	CurrentPage int
	TotalPages  int
	TotalCount  int
}

// HasMore reports whether a page after CurrentPage exists.
func (m Metadata) HasMore() bool {
	return m.CurrentPage < m.TotalPages
}

// NextPage is only meaningful when HasMore is true.
func (m Metadata) NextPage() int {
	return m.CurrentPage + 1
}
