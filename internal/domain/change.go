package domain

// Change is one detected registry mutation from the change feed.
type Change struct {
	ID               int
	NPI              string
	OrganizationName string
	ChangeType       string
	FieldChanged     *string
	OldValue         *string
	NewValue         *string
	DetectedAt       *string
}

type ChangePage struct {
	Items      []Change
	Total      int
	Page       int
	TotalPages int
}
