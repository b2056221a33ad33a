package ports

import (
	"context"
	"io"

	"github.com/bnema/pharmacy-intel-cli/internal/domain"
)

type LoginResult struct {
	AccessToken string
	Identity    domain.Identity
}

type AuthClient interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	VerifyToken(ctx context.Context, token string) (domain.Identity, error)
}

type RegistryClient interface {
	ListPharmacies(ctx context.Context, criteria domain.FilterCriteria) (domain.ResultPage, error)
	GetPharmacy(ctx context.Context, id domain.PharmacyID) (domain.PharmacyDetail, error)
	ListStates(ctx context.Context) ([]domain.StateCount, error)
	ListChanges(ctx context.Context, changeType string, page int) (domain.ChangePage, error)
	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
	ExportCSV(ctx context.Context, criteria domain.FilterCriteria, out io.Writer) (int64, error)
	PipelineStatus(ctx context.Context) (domain.PipelineStatus, error)
	TriggerPipeline(ctx context.Context) (domain.PipelineStatus, error)
}
