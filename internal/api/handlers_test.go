package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/props-advisor/internal/analysis"
	"github.com/yourusername/props-advisor/internal/inference"
	"github.com/yourusername/props-advisor/internal/logger"
	"github.com/yourusername/props-advisor/internal/models"
)

type fakeAnalyzer struct {
	report  *analysis.Report
	err     error
	lastReq analysis.Request
}

func (f *fakeAnalyzer) Analyze(_ context.Context, req analysis.Request) (*analysis.Report, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

type fakeRunStore struct {
	reports map[uuid.UUID]*analysis.Report
	listErr error
}

func (f *fakeRunStore) GetRun(_ context.Context, runID uuid.UUID) (*analysis.Report, error) {
	report, ok := f.reports[runID]
	if !ok {
		return nil, models.ErrRunNotFound
	}
	return report, nil
}

func (f *fakeRunStore) RecentRuns(_ context.Context, _ int) ([]*analysis.Report, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*analysis.Report, 0, len(f.reports))
	for _, r := range f.reports {
		out = append(out, r)
	}
	return out, nil
}

func sampleReport() *analysis.Report {
	return &analysis.Report{
		RunID:                   uuid.New(),
		Sport:                   analysis.SportNBA,
		EventID:                 "evt-123",
		HomeTeam:                "Los Angeles Lakers",
		AwayTeam:                "Denver Nuggets",
		GameTime:                time.Date(2026, time.January, 20, 0, 30, 0, 0, time.UTC),
		TotalPropsAvailable:     14,
		StarPlayerPropsAnalyzed: 5,
		HighConfidenceCount:     1,
		MediumConfidenceCount:   2,
		GeneratedAt:             time.Now().UTC(),
		TopProps: []analysis.PropResult{
			{
				Candidate: models.PropCandidate{
					PlayerName: "LeBron James",
					Team:       "Los Angeles Lakers",
					StatType:   models.StatPoints,
					Line:       28.5,
					OddsOver:   -110,
					OddsUnder:  -105,
					Bookmaker:  "draftkings",
				},
				Prediction: &models.Prediction{
					Side:             models.SideUnder,
					ProbabilityOver:  0.45,
					ProbabilityUnder: 0.55,
					Confidence:       0.12,
					ConfidencePct:    "12.0%",
					Tier:             models.TierMedium,
					ShouldBet:        true,
				},
				GamesUsed: 10,
			},
		},
	}
}

func newTestServer(analyzer Analyzer, runs RunStore) *httptest.Server {
	log := logger.NewLogger("error")
	handler := NewHandler(analyzer, runs, log)
	server := NewServer(ServerConfig{Port: 0}, handler, log)
	return httptest.NewServer(server.Router())
}

func postAnalyze(t *testing.T, server *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(server.URL+"/api/v1/props/analyze", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) ErrorResponse {
	t.Helper()
	defer resp.Body.Close()
	var out ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestAnalyzePropsSuccess(t *testing.T) {
	analyzer := &fakeAnalyzer{report: sampleReport()}
	server := newTestServer(analyzer, nil)
	defer server.Close()

	resp := postAnalyze(t, server, `{"sport": "basketball_nba", "team1": "Lakers", "team2": "Nuggets"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var out AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, "evt-123", out.EventID)
	assert.Equal(t, "Los Angeles Lakers", out.Teams.Home)
	assert.Equal(t, "Denver Nuggets", out.Teams.Away)
	assert.Equal(t, 14, out.TotalPropsAvailable)
	assert.Equal(t, 5, out.StarPlayerPropsAnalyzed)
	require.Len(t, out.TopProps, 1)
	assert.Equal(t, "LeBron James", out.TopProps[0].PlayerName)
	assert.Equal(t, "under", out.TopProps[0].Prediction)
	assert.Equal(t, "12.0%", out.TopProps[0].ConfidencePercent)
	assert.Equal(t, 10, out.TopProps[0].GamesUsed)

	// The handler passed the request through unchanged
	assert.Equal(t, "Lakers", analyzer.lastReq.Team1)
	assert.Equal(t, "Nuggets", analyzer.lastReq.Team2)
	assert.True(t, analyzer.lastReq.GameDate.IsZero())
}

func TestAnalyzePropsParsesGameDate(t *testing.T) {
	analyzer := &fakeAnalyzer{report: sampleReport()}
	server := newTestServer(analyzer, nil)
	defer server.Close()

	resp := postAnalyze(t, server,
		`{"sport": "basketball_nba", "team1": "Lakers", "team2": "Nuggets", "gameDate": "2026-01-20"}`)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), analyzer.lastReq.GameDate)
}

func TestAnalyzePropsValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"sport": `},
		{"unsupported sport", `{"sport": "americanfootball_nfl", "team1": "Chiefs", "team2": "Bills"}`},
		{"missing team1", `{"sport": "basketball_nba", "team2": "Nuggets"}`},
		{"missing team2", `{"sport": "basketball_nba", "team1": "Lakers"}`},
		{"malformed game date", `{"sport": "basketball_nba", "team1": "Lakers", "team2": "Nuggets", "gameDate": "Jan 20"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := &fakeAnalyzer{report: sampleReport()}
			server := newTestServer(analyzer, nil)
			defer server.Close()

			resp := postAnalyze(t, server, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			out := decodeError(t, resp)
			assert.Equal(t, http.StatusBadRequest, out.Code)
			assert.NotEmpty(t, out.Message)
		})
	}
}

func TestAnalyzePropsErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{models.ErrEventNotFound, http.StatusNotFound},
		{models.ErrNoOddsData, http.StatusNotFound},
		{models.ErrNoRosterMatches, http.StatusNotFound},
		{models.ErrUnsupportedSport, http.StatusBadRequest},
		{inference.ErrAuthenticationFailed, http.StatusInternalServerError},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			server := newTestServer(&fakeAnalyzer{err: tt.err}, nil)
			defer server.Close()

			resp := postAnalyze(t, server, `{"sport": "basketball_nba", "team1": "Lakers", "team2": "Nuggets"}`)
			assert.Equal(t, tt.want, resp.StatusCode)
			resp.Body.Close()
		})
	}
}

func TestGetRun(t *testing.T) {
	report := sampleReport()
	runs := &fakeRunStore{reports: map[uuid.UUID]*analysis.Report{report.RunID: report}}
	server := newTestServer(&fakeAnalyzer{}, runs)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/v1/runs/" + report.RunID.String())
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, report.RunID.String(), out.RunID)

	resp, err = http.Get(server.URL + "/api/v1/runs/" + uuid.NewString())
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/v1/runs/not-a-uuid")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRunHistoryDisabled(t *testing.T) {
	server := newTestServer(&fakeAnalyzer{}, nil)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/v1/runs")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecentRuns(t *testing.T) {
	report := sampleReport()
	runs := &fakeRunStore{reports: map[uuid.UUID]*analysis.Report{report.RunID: report}}
	server := newTestServer(&fakeAnalyzer{}, runs)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/v1/runs")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Runs  []AnalyzeResponse `json:"runs"`
		Count int               `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 1, out.Count)
	require.Len(t, out.Runs, 1)
}
