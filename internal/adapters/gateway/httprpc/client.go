package httprpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/guard-limiter-cli/internal/domain"
	"github.com/bnema/guard-limiter-cli/internal/ports"
)

// ErrAgentUnreachable wraps transport-level failures so callers can tell a
// dead agent apart from an operation the agent rejected.
var ErrAgentUnreachable = errors.New("guard-limiter agent unreachable")

const maxResponseBytes = 1 << 20

// Client implements the enforcement gateway against the agent's HTTP API. The
// endpoint paths carry the agent's operation names verbatim.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.EnforcementGateway = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type modePayload struct {
	AggressiveMode bool `json:"aggressive_mode"`
}

type statusPayload struct {
	TargetCore            *int   `json:"target_core"`
	SGuard64Found         bool   `json:"sguard64_found"`
	SGuard64Restricted    bool   `json:"sguard64_restricted"`
	SGuardSvc64Found      bool   `json:"sguardsvc64_found"`
	SGuardSvc64Restricted bool   `json:"sguardsvc64_restricted"`
	WeChatFound           bool   `json:"wechat_found"`
	WeChatRestricted      bool   `json:"wechat_restricted"`
	Message               string `json:"message"`
}

func (p statusPayload) toDomain() domain.ProcessStatus {
	found := map[string]bool{
		"sguard64":    p.SGuard64Found,
		"sguardsvc64": p.SGuardSvc64Found,
		"wechat":      p.WeChatFound,
	}
	restricted := map[string]bool{
		"sguard64":    p.SGuard64Restricted,
		"sguardsvc64": p.SGuardSvc64Restricted,
		"wechat":      p.WeChatRestricted,
	}

	procs := domain.TrackedProcesses()
	reports := make([]domain.ProcessReport, 0, len(procs))
	for _, proc := range procs {
		reports = append(reports, domain.ProcessReport{
			Process:    proc,
			Found:      found[proc.Key],
			Restricted: restricted[proc.Key],
		})
	}

	return domain.ProcessStatus{
		TargetCore: p.TargetCore,
		Reports:    reports,
		Message:    p.Message,
	}
}

type systemInfoPayload struct {
	CPUModel        string  `json:"cpu_model"`
	CPUCores        int     `json:"cpu_cores"`
	CPULogicalCores int     `json:"cpu_logical_cores"`
	OSName          string  `json:"os_name"`
	OSVersion       string  `json:"os_version"`
	IsAdmin         bool    `json:"is_admin"`
	TotalMemoryGB   float64 `json:"total_memory_gb"`
}

type perfSamplePayload struct {
	PID      int     `json:"pid"`
	Name     string  `json:"name"`
	CPUUsage float64 `json:"cpu_usage"`
	MemoryMB float64 `json:"memory_mb"`
}

func (c *Client) StartTimer(ctx context.Context, aggressive bool) error {
	if err := c.post(ctx, "start_timer", modePayload{AggressiveMode: aggressive}, nil); err != nil {
		return fmt.Errorf("start_timer: %w", err)
	}
	return nil
}

func (c *Client) StopTimer(ctx context.Context) error {
	if err := c.post(ctx, "stop_timer", nil, nil); err != nil {
		return fmt.Errorf("stop_timer: %w", err)
	}
	return nil
}

func (c *Client) RestrictProcesses(ctx context.Context, aggressive bool) (domain.ProcessStatus, error) {
	var payload statusPayload
	if err := c.post(ctx, "restrict_processes", modePayload{AggressiveMode: aggressive}, &payload); err != nil {
		return domain.ProcessStatus{}, fmt.Errorf("restrict_processes: %w", err)
	}

	return payload.toDomain(), nil
}

func (c *Client) GetSystemInfo(ctx context.Context) (domain.SystemInfo, error) {
	var payload systemInfoPayload
	if err := c.get(ctx, "get_system_info", &payload); err != nil {
		return domain.SystemInfo{}, fmt.Errorf("get_system_info: %w", err)
	}

	return domain.SystemInfo{
		CPUModel:        payload.CPUModel,
		CPUCores:        payload.CPUCores,
		CPULogicalCores: payload.CPULogicalCores,
		OSName:          payload.OSName,
		OSVersion:       payload.OSVersion,
		IsAdmin:         payload.IsAdmin,
		TotalMemoryGB:   payload.TotalMemoryGB,
	}, nil
}

func (c *Client) GetProcessPerformance(ctx context.Context) ([]domain.PerformanceSample, error) {
	var payload []perfSamplePayload
	if err := c.get(ctx, "get_process_performance", &payload); err != nil {
		return nil, fmt.Errorf("get_process_performance: %w", err)
	}

	samples := make([]domain.PerformanceSample, 0, len(payload))
	for _, sample := range payload {
		samples = append(samples, domain.PerformanceSample{
			PID:        sample.PID,
			Name:       sample.Name,
			CPUPercent: sample.CPUUsage,
			MemoryMB:   sample.MemoryMB,
		})
	}

	return samples, nil
}

func (c *Client) post(ctx context.Context, operation string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(operation), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	return c.do(request, out)
}

func (c *Client) get(ctx context.Context, operation string, out interface{}) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(operation), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	return c.do(request, out)
}

func (c *Client) endpoint(operation string) string {
	return c.baseURL + "/api/" + operation
}

func (c *Client) do(request *http.Request, out interface{}) error {
	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAgentUnreachable, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	return nil
}
