package browse

import (
	"context"
	"io"
	"testing"

	"github.com/bnema/pharmacy-intel-cli/internal/application"
	"github.com/bnema/pharmacy-intel-cli/internal/domain"
	"github.com/bnema/pharmacy-intel-cli/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTableListsRowsWithTypeTags(t *testing.T) {
	t.Parallel()

	city := "Fresno"
	state := "CA"
	zip := "93701"
	page := domain.ResultPage{
		Items: []domain.Pharmacy{
			{NPI: "1234567890", OrganizationName: "Corner Drug", City: &city, State: &state, Zip: &zip, IsIndependent: true},
			{NPI: "0987654321", OrganizationName: "MegaChain Pharmacy Holdings Incorporated", IsChain: true},
		},
		Total: 2, Page: 1, TotalPages: 1,
	}

	lines := renderTable(page, newStyles())
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Corner Drug")
	assert.Contains(t, lines[1], "Fresno")
	assert.Contains(t, lines[1], "indep")
	assert.Contains(t, lines[2], "chain")
	assert.NotContains(t, lines[2], "MegaChain Pharmacy Holdings Incorporated", "long names are truncated")
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactlyten", truncate("exactlyten", 10))
	assert.Equal(t, "much long…", truncate("much longer than ten", 10))
}

func TestModelIgnoresSupersededDebounce(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.debounceSeq = 2

	_, cmd := m.Update(debounceMsg{seq: 1})
	assert.Nil(t, cmd, "an old debounce tick must not apply filters")
}

func TestModelTypingSchedulesDebounce(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	model := updated.(Model)
	assert.Equal(t, 1, model.debounceSeq)
	assert.NotNil(t, cmd)
	assert.Equal(t, "a", model.inputs[fieldSearch].Value())
}

func TestModelStaleResultLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	stale := application.RequestTicket{Seq: 0, Criteria: domain.DefaultCriteria()}
	current := m.ctrl.Start()

	updated, _ := m.Update(resultMsg{ticket: stale, page: domain.ResultPage{Total: 99}})
	model := updated.(Model)
	_, ok := model.ctrl.Page()
	assert.False(t, ok)

	updated, _ = model.Update(resultMsg{ticket: current, page: domain.ResultPage{Total: 1, Page: 1, TotalPages: 1}})
	model = updated.(Model)
	page, ok := model.ctrl.Page()
	require.True(t, ok)
	assert.Equal(t, 1, page.Total)
}

func TestModelAuthFailureClearsSessionAndQuits(t *testing.T) {
	t.Parallel()

	tokens := &fakeTokenStore{token: "T"}
	sessions := application.NewSessionStore(tokens, fakeAuth{})
	require.NoError(t, sessions.Bootstrap(context.Background()))
	require.True(t, sessions.Current().Authenticated())

	ctrl := application.NewQueryController(fakeRegistry{}, domain.DefaultCriteria())
	m := New(context.Background(), ctrl, application.NewExportAction(fakeRegistry{}), sessions, Options{})
	ticket := m.ctrl.Start()

	updated, cmd := m.Update(resultMsg{ticket: ticket, err: &domain.AuthError{Detail: "Could not validate credentials"}})
	model := updated.(Model)

	assert.True(t, model.authExpired)
	assert.NotNil(t, cmd)
	assert.False(t, sessions.Current().Authenticated())
	assert.Empty(t, tokens.token)
}

func newTestModel(t *testing.T) Model {
	t.Helper()

	sessions := application.NewSessionStore(&fakeTokenStore{}, fakeAuth{})
	ctrl := application.NewQueryController(fakeRegistry{}, domain.DefaultCriteria())
	return New(context.Background(), ctrl, application.NewExportAction(fakeRegistry{}), sessions, Options{})
}

type fakeTokenStore struct {
	token string
}

func (s *fakeTokenStore) Load(_ context.Context) (string, error) {
	if s.token == "" {
		return "", domain.ErrNoSession
	}
	return s.token, nil
}

func (s *fakeTokenStore) Save(_ context.Context, token string) error {
	s.token = token
	return nil
}

func (s *fakeTokenStore) Clear(_ context.Context) error {
	s.token = ""
	return nil
}

type fakeAuth struct{}

func (fakeAuth) Login(_ context.Context, email, _ string) (ports.LoginResult, error) {
	return ports.LoginResult{AccessToken: "T", Identity: domain.Identity{Email: email}}, nil
}

func (fakeAuth) VerifyToken(_ context.Context, _ string) (domain.Identity, error) {
	return domain.Identity{Email: "a@b.c"}, nil
}

type fakeRegistry struct{}

func (fakeRegistry) ListPharmacies(_ context.Context, _ domain.FilterCriteria) (domain.ResultPage, error) {
	return domain.ResultPage{Page: 1, TotalPages: 1}, nil
}

func (fakeRegistry) GetPharmacy(_ context.Context, _ domain.PharmacyID) (domain.PharmacyDetail, error) {
	return domain.PharmacyDetail{}, domain.ErrPharmacyNotFound
}

func (fakeRegistry) ListStates(_ context.Context) ([]domain.StateCount, error) { return nil, nil }

func (fakeRegistry) ListChanges(_ context.Context, _ string, _ int) (domain.ChangePage, error) {
	return domain.ChangePage{}, nil
}

func (fakeRegistry) DashboardStats(_ context.Context) (domain.DashboardStats, error) {
	return domain.DashboardStats{}, nil
}

func (fakeRegistry) ExportCSV(_ context.Context, _ domain.FilterCriteria, out io.Writer) (int64, error) {
	written, err := out.Write([]byte("npi\n"))
	return int64(written), err
}

func (fakeRegistry) PipelineStatus(_ context.Context) (domain.PipelineStatus, error) {
	return domain.PipelineStatus{}, nil
}

func (fakeRegistry) TriggerPipeline(_ context.Context) (domain.PipelineStatus, error) {
	return domain.PipelineStatus{}, nil
}
