// Package mcpserver exposes the player analytics use cases as Model Context
// Protocol tools.
package mcpserver

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/riskibarqy/football-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-stats/internal/interfaces/presenter"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

const (
	serverName = "football-stats-mcp"
	mcpPath    = "/mcp"
)

type SearchArgs struct {
	Query    string `json:"query" jsonschema:"Player name or team prefix"`
	Position string `json:"position,omitempty" jsonschema:"Optional position filter: GK, DF, MF, FW or ALL"`
}

type TopPlayersArgs struct {
	Metric string `json:"metric,omitempty" jsonschema:"Ranking metric such as goals, assists, goals_per90 or top_goalkeepers (default goals)"`
	League string `json:"league,omitempty" jsonschema:"Competition name; empty or all for every league"`
	Age    *int   `json:"age,omitempty" jsonschema:"Exact player age"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Number of rows, 1 to 50 (default 10)"`
}

type CompareArgs struct {
	Player1ID int64  `json:"player1_id" jsonschema:"First player id"`
	Player2ID int64  `json:"player2_id" jsonschema:"Second player id"`
	Position  string `json:"position" jsonschema:"Position whose weights and cohort are used"`
}

type PercentileArgs struct {
	PlayerID int64  `json:"player_id" jsonschema:"Player id"`
	Position string `json:"position,omitempty" jsonschema:"Position cohort; defaults to the player's own"`
}

type BenchmarkArgs struct {
	Position string `json:"position" jsonschema:"Position to benchmark"`
	League   string `json:"league,omitempty" jsonschema:"Optional competition name"`
}

type SetPieceArgs struct {
	League     string `json:"league,omitempty" jsonschema:"Optional competition name"`
	Position   string `json:"position,omitempty" jsonschema:"Optional position filter"`
	AgeMin     *int   `json:"age_min,omitempty" jsonschema:"Minimum age"`
	AgeMax     *int   `json:"age_max,omitempty" jsonschema:"Maximum age"`
	MinMinutes int    `json:"min_minutes,omitempty" jsonschema:"Minimum minutes played"`
}

type Server struct {
	searchService     *usecase.SearchService
	rankingService    *usecase.RankingService
	comparisonService *usecase.ComparisonService
	benchmarkService  *usecase.BenchmarkService
	setPieceService   *usecase.SetPieceService
	logger            *logging.Logger
	mcp               *mcp.Server
	tools             []toolInfo
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func New(
	searchService *usecase.SearchService,
	rankingService *usecase.RankingService,
	comparisonService *usecase.ComparisonService,
	benchmarkService *usecase.BenchmarkService,
	setPieceService *usecase.SetPieceService,
	version string,
	logger *logging.Logger,
) *Server {
	if logger == nil {
		logger = logging.Default()
	}

	s := &Server{
		searchService:     searchService,
		rankingService:    rankingService,
		comparisonService: comparisonService,
		benchmarkService:  benchmarkService,
		setPieceService:   setPieceService,
		logger:            logger,
		mcp:               mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	addTool(s, &mcp.Tool{
		Name:        "search_players",
		Description: "Find up to ten players by name prefix, name substring or team prefix",
	}, s.searchPlayers)
	addTool(s, &mcp.Tool{
		Name:        "top_players",
		Description: "Rank players by a metric with tie-aware ranks",
	}, s.topPlayers)
	addTool(s, &mcp.Tool{
		Name:        "compare_players",
		Description: "Score two players against every played player of a position and name a winner",
	}, s.comparePlayers)
	addTool(s, &mcp.Tool{
		Name:        "position_percentile",
		Description: "Percentile of a player on each position metric",
	}, s.positionPercentile)
	addTool(s, &mcp.Tool{
		Name:        "position_benchmark",
		Description: "Distribution and top ten of each position metric",
	}, s.positionBenchmark)
	addTool(s, &mcp.Tool{
		Name:        "set_piece_specialists",
		Description: "Penalty, free kick and corner specialists",
	}, s.setPieceSpecialists)
}

func addTool[T any](s *Server, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	s.tools = append(s.tools, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(s.mcp, tool, handler)
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Handler serves the streamable HTTP transport on /mcp plus /health and
// /tools, all behind the API key.
func (s *Server) Handler(apiKey string, corsAllowedOrigins []string) http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.Handle("GET /tools", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		raw, err := sonic.Marshal(map[string]any{"tools": s.tools})
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(raw)
	}))
	mux.Handle(mcpPath, streamable)

	return httpapi.Wrap(httpapi.RequireAPIKey(apiKey, mux), s.logger, corsAllowedOrigins)
}

func (s *Server) searchPlayers(ctx context.Context, _ *mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, any, error) {
	players, err := s.searchService.Search(ctx, args.Query, args.Position)
	if err != nil {
		return s.toolError(ctx, "search_players", err), nil, nil
	}
	return toolJSON(presenter.PlayerSummaries(players))
}

func (s *Server) topPlayers(ctx context.Context, _ *mcp.CallToolRequest, args TopPlayersArgs) (*mcp.CallToolResult, any, error) {
	result, err := s.rankingService.TopPlayers(ctx, usecase.TopPlayersInput{
		Metric: args.Metric,
		League: args.League,
		Age:    args.Age,
		Limit:  args.Limit,
	})
	if err != nil {
		return s.toolError(ctx, "top_players", err), nil, nil
	}
	return toolJSON(presenter.TopPlayers(result))
}

func (s *Server) comparePlayers(ctx context.Context, _ *mcp.CallToolRequest, args CompareArgs) (*mcp.CallToolResult, any, error) {
	result, err := s.comparisonService.Compare(ctx, usecase.CompareInput{
		Player1ID: args.Player1ID,
		Player2ID: args.Player2ID,
		Position:  args.Position,
	})
	if err != nil {
		return s.toolError(ctx, "compare_players", err), nil, nil
	}
	return toolJSON(presenter.Comparison(result))
}

func (s *Server) positionPercentile(ctx context.Context, _ *mcp.CallToolRequest, args PercentileArgs) (*mcp.CallToolResult, any, error) {
	result, err := s.benchmarkService.PositionPercentile(ctx, args.PlayerID, args.Position)
	if err != nil {
		return s.toolError(ctx, "position_percentile", err), nil, nil
	}
	return toolJSON(presenter.Percentile(result))
}

func (s *Server) positionBenchmark(ctx context.Context, _ *mcp.CallToolRequest, args BenchmarkArgs) (*mcp.CallToolResult, any, error) {
	result, err := s.benchmarkService.PositionBenchmark(ctx, args.Position, args.League)
	if err != nil {
		return s.toolError(ctx, "position_benchmark", err), nil, nil
	}
	return toolJSON(presenter.Benchmark(result))
}

func (s *Server) setPieceSpecialists(ctx context.Context, _ *mcp.CallToolRequest, args SetPieceArgs) (*mcp.CallToolResult, any, error) {
	profiles, err := s.setPieceService.Specialists(ctx, usecase.SetPieceFilter{
		League:     args.League,
		Position:   args.Position,
		AgeMin:     args.AgeMin,
		AgeMax:     args.AgeMax,
		MinMinutes: args.MinMinutes,
	})
	if err != nil {
		return s.toolError(ctx, "set_piece_specialists", err), nil, nil
	}
	return toolJSON(presenter.SetPieces(profiles))
}

// toolError reports use case failures as tool results so the model can react
// to them; transport errors are reserved for protocol failures.
func (s *Server) toolError(ctx context.Context, tool string, err error) *mcp.CallToolResult {
	s.logger.WarnContext(ctx, "mcp tool failed", "tool", tool, "error", err)
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: "error: " + usecase.PublicMessage(err)},
		},
	}
}

func toolJSON(payload any) (*mcp.CallToolResult, any, error) {
	raw, err := sonic.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("encode tool result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(raw)},
		},
	}, nil, nil
}
