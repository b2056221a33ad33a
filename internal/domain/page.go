package domain

// ResultPage is one accepted page of listing results plus pagination
// metadata. It is only ever produced as the response to a fetch keyed by
// the criteria that were current when the fetch was issued.
type ResultPage struct {
	Items      []Pharmacy
	Total      int
	Page       int
	TotalPages int
}

// LastPage reports the highest reachable page number, never below 1.
func (p ResultPage) LastPage() int {
	if p.TotalPages < 1 {
		return 1
	}
	return p.TotalPages
}
