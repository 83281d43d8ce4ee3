package mcpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/riskibarqy/football-stats/internal/domain/analytics"
	"github.com/riskibarqy/football-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-stats/internal/interfaces/presenter"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	repo := memory.NewPlayerRepository(memory.SeedPlayers())
	return New(
		usecase.NewSearchService(repo),
		usecase.NewRankingService(repo),
		usecase.NewComparisonService(repo, analytics.NewScorer()),
		usecase.NewBenchmarkService(repo),
		usecase.NewSetPieceService(repo),
		"test",
		logging.NewNop(),
	)
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()

	if res == nil || len(res.Content) != 1 {
		t.Fatalf("expected one content block, got %+v", res)
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func TestSearchPlayersTool(t *testing.T) {
	s := newTestServer(t)

	res, _, err := s.searchPlayers(context.Background(), nil, SearchArgs{Query: "kane"})
	if err != nil {
		t.Fatalf("search players: %v", err)
	}
	var players []presenter.PlayerSummaryDTO
	if err := sonic.UnmarshalString(resultText(t, res), &players); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(players) != 1 || players[0].Name != "Harry Kane" {
		t.Fatalf("unexpected players: %+v", players)
	}
}

func TestCompareTool_ErrorIsToolResult(t *testing.T) {
	s := newTestServer(t)

	res, _, err := s.comparePlayers(context.Background(), nil, CompareArgs{Player1ID: 1, Player2ID: 999, Position: "FW"})
	if err != nil {
		t.Fatalf("use case errors must not become protocol errors: %v", err)
	}
	if !res.IsError || !strings.Contains(resultText(t, res), "not found") {
		t.Fatalf("expected not found tool error, got %+v", res)
	}
}

func TestPercentileTool(t *testing.T) {
	s := newTestServer(t)

	res, _, err := s.positionPercentile(context.Background(), nil, PercentileArgs{PlayerID: 7})
	if err != nil {
		t.Fatalf("position percentile: %v", err)
	}
	var out presenter.PercentileDTO
	if err := sonic.UnmarshalString(resultText(t, res), &out); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if out.Category != "goalkeeper" || len(out.Percentiles) == 0 {
		t.Fatalf("unexpected percentile result: %+v", out)
	}
}

func TestServerOverInMemoryTransport(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := s.MCP().Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("connect server: %v", err)
	}
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	if len(tools.Tools) != 6 {
		t.Fatalf("expected 6 tools, got %d", len(tools.Tools))
	}

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "top_players",
		Arguments: map[string]any{"metric": "assists", "limit": 3},
	})
	if err != nil {
		t.Fatalf("call top_players: %v", err)
	}
	var out presenter.TopPlayersDTO
	if err := sonic.UnmarshalString(resultText(t, res), &out); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if out.Metric != "assists" || out.Limit != 3 || len(out.Players) < 3 {
		t.Fatalf("unexpected ranking: %+v", out)
	}
}

func TestHandlerRequiresAPIKey(t *testing.T) {
	handler := newTestServer(t).Handler("secret", nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tools", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/tools", nil)
	req.Header.Set("X-API-Key", "secret")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "compare_players") {
		t.Fatalf("expected tool listing, got %d %s", rec.Code, rec.Body.String())
	}
}
