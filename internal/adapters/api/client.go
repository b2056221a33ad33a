package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bnema/pharmacy-intel-cli/internal/domain"
	"github.com/bnema/pharmacy-intel-cli/internal/ports"
)

const maxErrorBody = 1 << 20

// Client talks to the pharmacy registry backend. The token provider is
// consulted per request so the client always carries the session's current
// bearer token without holding session state itself.
type Client struct {
	baseURL string
	http    *http.Client
	token   func() string
	perPage int
}

var (
	_ ports.AuthClient     = (*Client)(nil)
	_ ports.RegistryClient = (*Client)(nil)
)

func NewClient(baseURL string, httpClient *http.Client, token func() string, perPage int) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if token == nil {
		token = func() string { return "" }
	}
	if perPage < 1 {
		perPage = 50
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		token:   token,
		perPage: perPage,
	}
}

func (c *Client) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return ports.LoginResult{}, fmt.Errorf("encode login request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return ports.LoginResult{}, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", "pmi/client")

	var payload struct {
		AccessToken string          `json:"access_token"`
		TokenType   string          `json:"token_type"`
		User        identityPayload `json:"user"`
	}
	if err := c.do(request, &payload); err != nil {
		return ports.LoginResult{}, err
	}

	return ports.LoginResult{
		AccessToken: payload.AccessToken,
		Identity:    payload.User.toDomain(),
	}, nil
}

func (c *Client) VerifyToken(ctx context.Context, token string) (domain.Identity, error) {
	request, err := c.newRequest(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return domain.Identity{}, err
	}
	request.Header.Set("Authorization", "Bearer "+token)

	var payload identityPayload
	if err := c.do(request, &payload); err != nil {
		return domain.Identity{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) ListPharmacies(ctx context.Context, criteria domain.FilterCriteria) (domain.ResultPage, error) {
	query := criteria.Values()
	query.Set("per_page", strconv.Itoa(c.perPage))

	request, err := c.newRequest(ctx, http.MethodGet, "/api/pharmacies?"+query.Encode(), nil)
	if err != nil {
		return domain.ResultPage{}, err
	}

	var payload struct {
		Data       []pharmacyPayload `json:"data"`
		Total      int               `json:"total"`
		Page       int               `json:"page"`
		TotalPages int               `json:"total_pages"`
	}
	if err := c.do(request, &payload); err != nil {
		return domain.ResultPage{}, err
	}

	items := make([]domain.Pharmacy, 0, len(payload.Data))
	for _, entry := range payload.Data {
		items = append(items, entry.toDomain())
	}

	return domain.ResultPage{
		Items:      items,
		Total:      payload.Total,
		Page:       payload.Page,
		TotalPages: payload.TotalPages,
	}, nil
}

func (c *Client) GetPharmacy(ctx context.Context, id domain.PharmacyID) (domain.PharmacyDetail, error) {
	request, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/api/pharmacies/%d", id), nil)
	if err != nil {
		return domain.PharmacyDetail{}, err
	}

	var payload pharmacyDetailPayload
	if err := c.do(request, &payload); err != nil {
		return domain.PharmacyDetail{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) ListStates(ctx context.Context) ([]domain.StateCount, error) {
	request, err := c.newRequest(ctx, http.MethodGet, "/api/pharmacies/states", nil)
	if err != nil {
		return nil, err
	}

	var payload []struct {
		State string `json:"state"`
		Count int    `json:"count"`
	}
	if err := c.do(request, &payload); err != nil {
		return nil, err
	}

	states := make([]domain.StateCount, 0, len(payload))
	for _, entry := range payload {
		states = append(states, domain.StateCount{State: entry.State, Count: entry.Count})
	}

	return states, nil
}

func (c *Client) ListChanges(ctx context.Context, changeType string, page int) (domain.ChangePage, error) {
	if page < 1 {
		page = 1
	}

	query := url.Values{}
	if changeType != "" {
		query.Set("change_type", changeType)
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(c.perPage))

	request, err := c.newRequest(ctx, http.MethodGet, "/api/changes?"+query.Encode(), nil)
	if err != nil {
		return domain.ChangePage{}, err
	}

	var payload struct {
		Data []struct {
			ID               int     `json:"id"`
			NPI              string  `json:"npi"`
			OrganizationName string  `json:"organization_name"`
			ChangeType       string  `json:"change_type"`
			FieldChanged     *string `json:"field_changed"`
			OldValue         *string `json:"old_value"`
			NewValue         *string `json:"new_value"`
			DetectedAt       *string `json:"detected_at"`
		} `json:"data"`
		Total      int `json:"total"`
		Page       int `json:"page"`
		TotalPages int `json:"total_pages"`
	}
	if err := c.do(request, &payload); err != nil {
		return domain.ChangePage{}, err
	}

	items := make([]domain.Change, 0, len(payload.Data))
	for _, entry := range payload.Data {
		items = append(items, domain.Change{
			ID:               entry.ID,
			NPI:              entry.NPI,
			OrganizationName: entry.OrganizationName,
			ChangeType:       entry.ChangeType,
			FieldChanged:     entry.FieldChanged,
			OldValue:         entry.OldValue,
			NewValue:         entry.NewValue,
			DetectedAt:       entry.DetectedAt,
		})
	}

	return domain.ChangePage{
		Items:      items,
		Total:      payload.Total,
		Page:       payload.Page,
		TotalPages: payload.TotalPages,
	}, nil
}

func (c *Client) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	request, err := c.newRequest(ctx, http.MethodGet, "/api/dashboard/stats", nil)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	var payload struct {
		TotalPharmacies  int `json:"total_pharmacies"`
		IndependentCount int `json:"independent_count"`
		ChainCount       int `json:"chain_count"`
		StatesCovered    int `json:"states_covered"`
		RecentChanges    int `json:"recent_changes"`
		TopStates        []struct {
			State string `json:"state"`
			Count int    `json:"count"`
		} `json:"top_states"`
		RecentRuns []pipelineRunPayload `json:"recent_runs"`
	}
	if err := c.do(request, &payload); err != nil {
		return domain.DashboardStats{}, err
	}

	stats := domain.DashboardStats{
		TotalPharmacies:  payload.TotalPharmacies,
		IndependentCount: payload.IndependentCount,
		ChainCount:       payload.ChainCount,
		StatesCovered:    payload.StatesCovered,
		RecentChanges:    payload.RecentChanges,
	}
	for _, entry := range payload.TopStates {
		stats.TopStates = append(stats.TopStates, domain.StateCount{State: entry.State, Count: entry.Count})
	}
	for _, entry := range payload.RecentRuns {
		stats.RecentRuns = append(stats.RecentRuns, entry.toDomain())
	}

	return stats, nil
}

// ExportCSV streams the bulk export for the given criteria, pagination
// stripped, into out. Returns the number of bytes written.
func (c *Client) ExportCSV(ctx context.Context, criteria domain.FilterCriteria, out io.Writer) (int64, error) {
	request, err := c.newRequest(ctx, http.MethodGet, "/api/exports/csv?"+criteria.ExportValues().Encode(), nil)
	if err != nil {
		return 0, err
	}

	response, err := c.http.Do(request)
	if err != nil {
		return 0, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	if err := checkStatus(response); err != nil {
		return 0, err
	}

	written, err := io.Copy(out, response.Body)
	if err != nil {
		return written, fmt.Errorf("stream export: %w", err)
	}

	return written, nil
}

func (c *Client) PipelineStatus(ctx context.Context) (domain.PipelineStatus, error) {
	request, err := c.newRequest(ctx, http.MethodGet, "/api/pipeline/status", nil)
	if err != nil {
		return domain.PipelineStatus{}, err
	}

	var payload pipelineStatusPayload
	if err := c.do(request, &payload); err != nil {
		return domain.PipelineStatus{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) TriggerPipeline(ctx context.Context) (domain.PipelineStatus, error) {
	request, err := c.newRequest(ctx, http.MethodPost, "/api/pipeline/trigger", nil)
	if err != nil {
		return domain.PipelineStatus{}, err
	}

	var payload pipelineStatusPayload
	if err := c.do(request, &payload); err != nil {
		return domain.PipelineStatus{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	request.Header.Set("User-Agent", "pmi/client")
	if token := c.token(); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	return request, nil
}

func (c *Client) do(request *http.Request, out any) error {
	response, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	if err := checkStatus(response); err != nil {
		return err
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	return nil
}

func checkStatus(response *http.Response) error {
	if response.StatusCode >= 200 && response.StatusCode <= 299 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))

	switch response.StatusCode {
	case http.StatusUnauthorized, http.StatusUnprocessableEntity:
		return &domain.AuthError{Detail: errorDetail(body)}
	case http.StatusNotFound:
		return domain.ErrPharmacyNotFound
	}

	return fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
}

func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Detail)
}
