package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/pharmacy-intel-cli/internal/domain"
	"github.com/spf13/cobra"
)

// criteriaFlags is the flag surface shared by the listing-driven commands.
// A --share query string seeds the criteria; explicit flags override it.
type criteriaFlags struct {
	share  string
	search string
	state  string
	city   string
	zip    string
	all    bool
	page   int
}

func (f *criteriaFlags) register(cmd *cobra.Command, withPage bool) {
	cmd.Flags().StringVar(&f.share, "share", "", "Shareable query string (search=...&state=...&page=...)")
	cmd.Flags().StringVar(&f.search, "search", "", "Free-text search (name, NPI, city)")
	cmd.Flags().StringVar(&f.state, "state", "", "Two-letter state filter")
	cmd.Flags().StringVar(&f.city, "city", "", "City filter")
	cmd.Flags().StringVar(&f.zip, "zip", "", "ZIP prefix filter")
	cmd.Flags().BoolVar(&f.all, "all", false, "Include chain pharmacies (default: independent only)")
	if withPage {
		cmd.Flags().IntVar(&f.page, "page", 1, "Page number")
	}
}

func (f *criteriaFlags) criteria(cmd *cobra.Command) (domain.FilterCriteria, error) {
	criteria := domain.DefaultCriteria()

	if f.share != "" {
		values, err := url.ParseQuery(strings.TrimPrefix(f.share, "?"))
		if err != nil {
			return domain.FilterCriteria{}, fmt.Errorf("parse share query: %w", err)
		}
		criteria = domain.ParseCriteria(values)
	}

	flags := cmd.Flags()
	if flags.Changed("search") {
		criteria.Search = f.search
	}
	if flags.Changed("state") {
		criteria.State = strings.ToUpper(strings.TrimSpace(f.state))
	}
	if flags.Changed("city") {
		criteria.City = f.city
	}
	if flags.Changed("zip") {
		criteria.ZipPrefix = f.zip
	}
	if flags.Changed("all") {
		criteria.IndependentOnly = !f.all
	}
	if flags.Changed("page") {
		if f.page < 1 {
			f.page = 1
		}
		criteria.Page = f.page
	}

	return criteria, nil
}
