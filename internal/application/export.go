package application

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/pharmacy-intel-cli/internal/domain"
	"github.com/bnema/pharmacy-intel-cli/internal/ports"
)

// ExportAction turns the controller's current criteria into one bulk CSV
// download. It is stateless and bypasses the fetch sequencing entirely
// since pagination does not apply.
type ExportAction struct {
	client ports.RegistryClient
}

func NewExportAction(client ports.RegistryClient) ExportAction {
	return ExportAction{client: client}
}

func (a ExportAction) Run(ctx context.Context, criteria domain.FilterCriteria, out io.Writer) (int64, error) {
	written, err := a.client.ExportCSV(ctx, criteria, out)
	if err != nil {
		return written, fmt.Errorf("export csv: %w", err)
	}
	return written, nil
}
