// Package csvimport turns an FBref standard stats export into player rows.
package csvimport

import (
	"context"
	"encoding/csv"
	"io"
	"runtime"
	"strconv"
	"strings"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/football-stats/internal/domain/player"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

const (
	colPlayer      = "Player"
	colNation      = "Nation"
	colPosition    = "Position"
	colSquad       = "Squad"
	colCompetition = "Competition"
	colAge         = "Age"
)

// Result is the outcome of one Parse call. Rows counts data records seen,
// excluding the header and any repeated header lines.
type Result struct {
	Players []player.Player
	Rows    int
	Skipped int
}

type Option func(*Reader)

// WithWorkers sets the row parsing pool size.
func WithWorkers(n int) Option {
	return func(r *Reader) {
		if n > 0 {
			r.workers = n
		}
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

type Reader struct {
	workers int
	logger  *logging.Logger
}

func NewReader(opts ...Option) *Reader {
	r := &Reader{
		workers: runtime.GOMAXPROCS(0),
		logger:  logging.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Parse reads every record from src. Repeated header lines and rows without
// Player or Squad are skipped; so are rows with unparsable numbers. Output
// order follows input order.
func (r *Reader) Parse(ctx context.Context, src io.Reader) (Result, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return Result{}, crerr.New("csv input is empty")
	}
	if err != nil {
		return Result{}, crerr.Wrap(err, "read csv header")
	}
	columns := indexColumns(header)
	for _, required := range []string{colPlayer, colSquad} {
		if _, ok := columns[required]; !ok {
			return Result{}, crerr.Newf("csv header is missing column %q", required)
		}
	}

	var records [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, crerr.Wrapf(err, "read csv record %d", len(records)+1)
		}
		if isHeaderRecord(record) {
			continue
		}
		records = append(records, record)
	}

	parsed, err := r.parseRecords(ctx, columns, records)
	if err != nil {
		return Result{}, err
	}

	result := Result{Rows: len(records), Players: make([]player.Player, 0, len(records))}
	for _, row := range parsed {
		if !row.ok {
			result.Skipped++
			continue
		}
		result.Players = append(result.Players, row.player)
	}
	return result, nil
}

type parsedRow struct {
	player player.Player
	ok     bool
}

func (r *Reader) parseRecords(ctx context.Context, columns map[string]int, records [][]string) ([]parsedRow, error) {
	out := make([]parsedRow, len(records))
	if len(records) == 0 {
		return out, nil
	}

	pool, err := ants.NewPool(r.workers)
	if err != nil {
		return nil, crerr.Wrap(err, "create row parsing pool")
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, record := range records {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, crerr.Wrap(err, "parse csv rows")
		}

		i, record := i, record
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			p, err := parseRecord(columns, record)
			if err != nil {
				r.logger.DebugContext(ctx, "skipping csv row", "row", i+1, "error", err)
				return
			}
			out[i] = parsedRow{player: p, ok: true}
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, crerr.Wrap(err, "submit row to parsing pool")
		}
	}
	wg.Wait()

	return out, nil
}

func parseRecord(columns map[string]int, record []string) (player.Player, error) {
	row := rowReader{columns: columns, record: record}

	p := player.Player{
		Name:        row.str(colPlayer),
		Nation:      row.str(colNation),
		Position:    row.str(colPosition),
		Squad:       row.str(colSquad),
		Competition: row.str(colCompetition),
	}
	if p.Name == "" || p.Squad == "" {
		return player.Player{}, crerr.New("player and squad are required")
	}

	p.Age = row.age(colAge)

	p.MatchesPlayed = row.count("Playing Time_MP")
	p.MatchesStarted = row.count("Playing Time_Starts")
	p.MinutesPlayed = row.count("Playing Time_Min")
	p.Minutes90s = row.number("Playing Time_90s")

	p.Goals = row.count("Performance_Gls")
	p.Assists = row.count("Performance_Ast")
	p.GoalsAssists = row.count("Performance_G+A")
	p.GoalsNoPenalty = row.count("Performance_G-PK")
	p.PenaltiesMade = row.count("Performance_PK")
	p.PenaltiesAttempted = row.count("Performance_PKatt")
	p.YellowCards = row.count("Performance_CrdY")
	p.RedCards = row.count("Performance_CrdR")

	p.ExpectedGoals = row.number("Expected_xG")
	p.ExpectedGoalsNoPenalty = row.number("Expected_npxG")
	p.ExpectedAssists = row.number("Expected_xAG")
	p.ExpectedGoalsAssists = row.number("Expected_npxG+xAG")

	p.ProgressiveCarries = row.count("Progression_PrgC")
	p.ProgressivePasses = row.count("Progression_PrgP")
	p.ProgressiveDribbles = row.count("Progression_PrgR")

	if row.err != nil {
		return player.Player{}, row.err
	}
	return p, nil
}

// rowReader keeps the first conversion error so parseRecord reads linearly.
type rowReader struct {
	columns map[string]int
	record  []string
	err     error
}

func (r *rowReader) str(name string) string {
	idx, ok := r.columns[name]
	if !ok || idx >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[idx])
}

func (r *rowReader) number(name string) float64 {
	raw := strings.ReplaceAll(r.str(name), ",", "")
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.fail(crerr.Wrapf(err, "column %q", name))
		return 0
	}
	return v
}

// count accepts float encoded counters such as "12.0" and truncates them.
func (r *rowReader) count(name string) int {
	return int(r.number(name))
}

// age accepts both "27" and the "27-114" years-days form.
func (r *rowReader) age(name string) int {
	raw := r.str(name)
	if years, _, found := strings.Cut(raw, "-"); found {
		raw = years
	}
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.fail(crerr.Wrapf(err, "column %q", name))
		return 0
	}
	return int(v)
}

func (r *rowReader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}
	return columns
}

// isHeaderRecord spots the header lines FBref repeats inside long tables.
func isHeaderRecord(record []string) bool {
	return len(record) >= 2 &&
		strings.TrimSpace(record[0]) == colPlayer &&
		strings.TrimSpace(record[1]) == colNation
}
