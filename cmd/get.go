package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/bnema/pharmacy-intel-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newGetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one pharmacy record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid pharmacy id %q", args[0])
			}

			detail, err := app.registry.GetPharmacy(cmd.Context(), domain.PharmacyID(id))
			if err != nil {
				if errors.Is(err, domain.ErrPharmacyNotFound) {
					return fmt.Errorf("pharmacy %d not found", id)
				}
				return fmt.Errorf("fetch pharmacy: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(detail)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s (NPI %s)\n", detail.OrganizationName, detail.NPI)
			if detail.DBAName != nil {
				_, _ = fmt.Fprintf(out, "doing business as: %s\n", *detail.DBAName)
			}
			writeDetailLine(out, "address", detail.AddressLine1)
			writeDetailLine(out, "", detail.AddressLine2)
			_, _ = fmt.Fprintf(out, "location: %s, %s %s\n", strDeref(detail.City), strDeref(detail.State), strDeref(detail.Zip))
			writeDetailLine(out, "county", detail.County)
			writeDetailLine(out, "phone", detail.Phone)
			writeDetailLine(out, "taxonomy", detail.TaxonomyDescription)
			writeDetailLine(out, "ownership", detail.OwnershipType)
			writeDetailLine(out, "official", detail.AuthorizedOfficialName)

			kind := "chain"
			if detail.IsIndependent {
				kind = "independent"
			}
			_, _ = fmt.Fprintf(out, "type: %s\n", kind)
			if detail.ChainParent != nil {
				_, _ = fmt.Fprintf(out, "chain parent: %s\n", *detail.ChainParent)
			}
			if detail.MedicareClaimsCount != nil {
				_, _ = fmt.Fprintf(out, "medicare claims: %d\n", *detail.MedicareClaimsCount)
			}
			if detail.MedicareTotalCost != nil {
				_, _ = fmt.Fprintf(out, "medicare cost: %.2f\n", *detail.MedicareTotalCost)
			}
			writeDetailLine(out, "last refreshed", detail.LastRefreshed)

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeDetailLine(out io.Writer, label string, value *string) {
	if value == nil || *value == "" {
		return
	}
	if label == "" {
		_, _ = fmt.Fprintf(out, "         %s\n", *value)
		return
	}
	_, _ = fmt.Fprintf(out, "%s: %s\n", label, *value)
}
