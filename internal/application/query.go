package application

import (
	"context"
	"strings"

	"github.com/bnema/pharmacy-intel-cli/internal/domain"
	"github.com/bnema/pharmacy-intel-cli/internal/ports"
)

// RequestTicket tags one in-flight fetch with the criteria snapshot it was
// issued for. Only the ticket carrying the highest sequence number may
// update visible state when it resolves.
type RequestTicket struct {
	Seq      uint64
	Criteria domain.FilterCriteria
}

// QueryController keeps one listing view's FilterCriteria, its shareable
// query-string form, and the most recent accepted ResultPage in agreement
// across overlapping fetches.
//
// The controller is driven from a single event loop (a bubbletea Update
// cycle, or one command goroutine): setters hand out tickets, the caller
// performs the fetch however it likes, and Resolve applies the
// stale-response guard. Responses from superseded tickets are discarded
// wholesale, so network arrival order never matters.
type QueryController struct {
	client ports.RegistryClient

	criteria domain.FilterCriteria
	lastSeq  uint64
	loading  bool
	err      error
	page     *domain.ResultPage
}

func NewQueryController(client ports.RegistryClient, criteria domain.FilterCriteria) *QueryController {
	if criteria.Page < 1 {
		criteria.Page = 1
	}
	return &QueryController{client: client, criteria: criteria}
}

// Start issues the initial fetch for the criteria the controller was
// created with.
func (c *QueryController) Start() RequestTicket {
	return c.issue()
}

func (c *QueryController) SetSearch(value string) (RequestTicket, bool) {
	return c.setFilter(func(criteria *domain.FilterCriteria) {
		criteria.Search = value
	})
}

func (c *QueryController) SetState(value string) (RequestTicket, bool) {
	return c.setFilter(func(criteria *domain.FilterCriteria) {
		criteria.State = strings.ToUpper(strings.TrimSpace(value))
	})
}

func (c *QueryController) SetCity(value string) (RequestTicket, bool) {
	return c.setFilter(func(criteria *domain.FilterCriteria) {
		criteria.City = strings.TrimSpace(value)
	})
}

func (c *QueryController) SetZipPrefix(value string) (RequestTicket, bool) {
	return c.setFilter(func(criteria *domain.FilterCriteria) {
		criteria.ZipPrefix = strings.TrimSpace(value)
	})
}

func (c *QueryController) SetIndependentOnly(value bool) (RequestTicket, bool) {
	return c.setFilter(func(criteria *domain.FilterCriteria) {
		criteria.IndependentOnly = value
	})
}

// SetPage clamps to [1, max(totalPages,1)] against the last accepted page,
// or to 1 when no page has been accepted yet. Landing on the current page
// is a no-op and issues nothing.
func (c *QueryController) SetPage(page int) (RequestTicket, bool) {
	page = c.clampPage(page)
	if page == c.criteria.Page {
		return RequestTicket{}, false
	}

	c.criteria.Page = page
	return c.issue(), true
}

func (c *QueryController) NextPage() (RequestTicket, bool) {
	return c.SetPage(c.criteria.Page + 1)
}

func (c *QueryController) PrevPage() (RequestTicket, bool) {
	return c.SetPage(c.criteria.Page - 1)
}

// Retry reissues the current criteria after a failed fetch.
func (c *QueryController) Retry() RequestTicket {
	return c.issue()
}

// Fetch performs the listing call for one ticket. It does not touch
// controller state; pass the outcome to Resolve.
func (c *QueryController) Fetch(ctx context.Context, ticket RequestTicket) (domain.ResultPage, error) {
	return c.client.ListPharmacies(ctx, ticket.Criteria)
}

// Run is the synchronous fetch-and-resolve path for one-shot callers.
func (c *QueryController) Run(ctx context.Context, ticket RequestTicket) error {
	page, err := c.Fetch(ctx, ticket)
	c.Resolve(ticket, page, err)
	return err
}

// Resolve reconciles one finished fetch. A ticket that is no longer the
// latest issued is stale: its result is discarded and displayed state is
// left untouched. A failure of the current ticket keeps the previous page
// on screen and raises the error flag instead of clearing the view.
func (c *QueryController) Resolve(ticket RequestTicket, page domain.ResultPage, err error) bool {
	if ticket.Seq != c.lastSeq {
		return false
	}

	c.loading = false
	if err != nil {
		c.err = err
		return true
	}

	c.err = nil
	c.page = &page
	return true
}

func (c *QueryController) Criteria() domain.FilterCriteria {
	return c.criteria
}

func (c *QueryController) Loading() bool {
	return c.loading
}

func (c *QueryController) Err() error {
	return c.err
}

func (c *QueryController) Page() (domain.ResultPage, bool) {
	if c.page == nil {
		return domain.ResultPage{}, false
	}
	return *c.page, true
}

// ShareQuery returns the criteria encoded as a shareable query string.
func (c *QueryController) ShareQuery() string {
	return c.criteria.Values().Encode()
}

func (c *QueryController) setFilter(apply func(*domain.FilterCriteria)) (RequestTicket, bool) {
	next := c.criteria
	apply(&next)
	next.Page = 1

	if next == c.criteria {
		return RequestTicket{}, false
	}

	c.criteria = next
	return c.issue(), true
}

func (c *QueryController) issue() RequestTicket {
	c.lastSeq++
	c.loading = true
	return RequestTicket{Seq: c.lastSeq, Criteria: c.criteria}
}

func (c *QueryController) clampPage(page int) int {
	if page < 1 {
		return 1
	}

	last := 1
	if c.page != nil {
		last = c.page.LastPage()
	}
	if page > last {
		return last
	}
	return page
}
