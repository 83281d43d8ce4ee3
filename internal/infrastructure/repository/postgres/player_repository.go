package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/football-stats/internal/domain/player"
	qb "github.com/riskibarqy/football-stats/internal/platform/querybuilder"
)

const (
	playersTable         = "players"
	datasetVersionsTable = "dataset_versions"
	datasetVersionRowID  = 1

	// 500 rows × 36 columns stays well under the 65535 bind parameter cap.
	insertBatchSize = 500
)

var orderColumns = map[player.OrderField]string{
	player.OrderByName:          "name",
	player.OrderByGoals:         "goals",
	player.OrderByAssists:       "assists",
	player.OrderByMatchesPlayed: "matches_played",
	player.OrderByMinutesPlayed: "minutes_played",
	player.OrderByGoalsPer90:    "goals_per90",
	player.OrderByAssistsPer90:  "assists_per90",
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, crerr.Wrap(err, "build select players query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From(playersTable).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, crerr.Wrap(err, "build select player by id query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, crerr.Wrapf(err, "select player %d", id)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) ListCompetitions(ctx context.Context) ([]string, error) {
	query, args, err := qb.Select("DISTINCT competition").From(playersTable).
		Where(qb.Expr("competition <> ''")).
		OrderBy("competition").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select competitions query")
	}

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select competitions")
	}
	return out, nil
}

func (r *PlayerRepository) ListAges(ctx context.Context, competition string) ([]int, error) {
	conditions := []qb.Condition{qb.Gt("age", 0)}
	if competition != "" {
		conditions = append(conditions, qb.Eq("competition", competition))
	}

	query, args, err := qb.Select("DISTINCT age").From(playersTable).
		Where(conditions...).
		OrderBy("age").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select ages query")
	}

	var out []int
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select ages")
	}
	return out, nil
}

func (r *PlayerRepository) Summarize(ctx context.Context, filter player.Filter) (player.Summary, error) {
	conditions := filterConditions(filter)

	query, args, err := qb.Select(
		"COUNT(*) AS players",
		"COUNT(DISTINCT squad) AS teams",
		"COALESCE(SUM(matches_played), 0) AS matches",
		"COALESCE(SUM(goals), 0) AS goals",
		"COALESCE(SUM(assists), 0) AS assists",
		"COALESCE(SUM(penalties_made), 0) AS penalty_goals",
		"COALESCE(SUM(yellow_cards), 0) AS yellow_cards",
		"COALESCE(SUM(red_cards), 0) AS red_cards",
		"COALESCE(AVG(age), 0)::float8 AS average_age",
		"COALESCE(MAX(goals), 0) AS max_goals",
	).From(playersTable).Where(conditions...).ToSQL()
	if err != nil {
		return player.Summary{}, crerr.Wrap(err, "build summarize players query")
	}

	var row summaryModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return player.Summary{}, crerr.Wrap(err, "summarize players")
	}

	out := player.Summary{
		Players:      row.Players,
		Teams:        row.Teams,
		Matches:      row.Matches,
		Goals:        row.Goals,
		Assists:      row.Assists,
		PenaltyGoals: row.PenaltyGoal,
		YellowCards:  row.YellowCards,
		RedCards:     row.RedCards,
		AverageAge:   row.AverageAge,
		MaxGoals:     row.MaxGoals,
	}
	if row.Players == 0 {
		return out, nil
	}

	query, args, err = qb.Select("name").From(playersTable).
		Where(conditions...).
		OrderBy("goals DESC", "id ASC").
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Summary{}, crerr.Wrap(err, "build top scorer query")
	}
	if err := r.db.GetContext(ctx, &out.TopScorerName, query, args...); err != nil && !isNotFound(err) {
		return player.Summary{}, crerr.Wrap(err, "select top scorer")
	}
	return out, nil
}

// ReplaceAll swaps the full table and bumps the dataset version in one
// transaction.
func (r *PlayerRepository) ReplaceAll(ctx context.Context, players []player.Player) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, crerr.Wrap(err, "begin replace players tx")
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := qb.DeleteFrom(playersTable).ToSQL()
	if err != nil {
		return 0, crerr.Wrap(err, "build delete players query")
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return 0, crerr.Wrap(err, "delete players")
	}

	models := make([]playerTableModel, 0, len(players))
	for _, p := range players {
		models = append(models, playerModelFromDomain(p))
	}
	for i, batch := range chunks(models, insertBatchSize) {
		query, args, err := qb.InsertModels(playersTable, batch, "")
		if err != nil {
			return 0, crerr.Wrapf(err, "build insert players batch %d", i)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, crerr.Wrapf(err, "insert players batch %d", i)
		}
	}

	query, args, err = qb.Update(datasetVersionsTable).
		SetExpr("version", "version + 1").
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", datasetVersionRowID)).
		Suffix("RETURNING version").
		ToSQL()
	if err != nil {
		return 0, crerr.Wrap(err, "build bump dataset version query")
	}

	var version int64
	if err := tx.GetContext(ctx, &version, query, args...); err != nil {
		return 0, crerr.Wrap(err, "bump dataset version")
	}

	if err := tx.Commit(); err != nil {
		return 0, crerr.Wrap(err, "commit replace players tx")
	}
	return version, nil
}

func (r *PlayerRepository) DatasetVersion(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("version").From(datasetVersionsTable).
		Where(qb.Eq("id", datasetVersionRowID)).
		ToSQL()
	if err != nil {
		return 0, crerr.Wrap(err, "build dataset version query")
	}

	var version int64
	if err := r.db.GetContext(ctx, &version, query, args...); err != nil {
		if isNotFound(err) {
			return 0, nil
		}
		return 0, crerr.Wrap(err, "select dataset version")
	}
	return version, nil
}

func buildListQuery(filter player.Filter) (string, []any, error) {
	return qb.Select(playerSelectColumns...).From(playersTable).
		Where(filterConditions(filter)...).
		OrderBy(orderClauses(filter.OrderBy)...).
		Limit(filter.Limit).
		ToSQL()
}

func filterConditions(filter player.Filter) []qb.Condition {
	var out []qb.Condition
	if filter.Competition != "" {
		out = append(out, qb.Eq("competition", filter.Competition))
	}
	if filter.Squad != "" {
		out = append(out, qb.Eq("squad", filter.Squad))
	}
	if filter.Age != nil {
		out = append(out, qb.Eq("age", *filter.Age))
	}
	if filter.AgeMin != nil {
		out = append(out, qb.Gte("age", *filter.AgeMin))
	}
	if filter.AgeMax != nil {
		out = append(out, qb.Lte("age", *filter.AgeMax))
	}
	if filter.MinMinutes > 0 {
		out = append(out, qb.Gte("minutes_played", filter.MinMinutes))
	}
	if filter.OnlyPlayed {
		out = append(out, qb.Gt("minutes_played", 0))
	}
	if filter.Position != "" {
		out = append(out, qb.ILike("position", filter.Position))
	}
	if len(filter.ExcludeIDs) > 0 {
		out = append(out, qb.NotEqAll("id", pq.Array(filter.ExcludeIDs)))
	}
	return out
}

// orderClauses maps requested orders to columns, skipping unknown fields, and
// always ends with id so pages are stable.
func orderClauses(orders []player.Order) []string {
	out := make([]string, 0, len(orders)+1)
	for _, o := range orders {
		column, ok := orderColumns[o.Field]
		if !ok {
			continue
		}
		if o.Field == player.OrderByName {
			column = "LOWER(name)"
		}
		if o.Desc {
			out = append(out, column+" DESC")
		} else {
			out = append(out, column+" ASC")
		}
	}
	return append(out, "id ASC")
}
