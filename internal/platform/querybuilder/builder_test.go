package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	query, args, err := Select("id", "name").
		From("players").
		Where(
			Eq("competition", "Serie A"),
			Gte("age", 20),
			Lte("age", 25),
			Gt("minutes_played", 0),
			ILike("position", "d_f"),
			NotEqAll("id", []int64{1, 2}),
			Expr("competition <> ''"),
		).
		OrderBy("goals DESC", "id ASC").
		Limit(10).
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, name FROM players WHERE competition = $1 AND age >= $2 AND age <= $3"+
			" AND minutes_played > $4 AND position ILIKE $5 AND id <> ALL($6) AND competition <> ''"+
			" ORDER BY goals DESC, id ASC LIMIT 10",
		query)
	require.Len(t, args, 6)
	assert.Equal(t, "Serie A", args[0])
	assert.Equal(t, `%d\_f%`, args[4])
}

func TestSelect_NoLimitOrWhere(t *testing.T) {
	query, args, err := Select("version").From("dataset_versions").Limit(0).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT version FROM dataset_versions", query)
	assert.Empty(t, args)

	_, _, err = Select().From("players").ToSQL()
	assert.Error(t, err)
	_, _, err = Select("id").ToSQL()
	assert.Error(t, err)
}

func TestExpr_BindsValuesInOrder(t *testing.T) {
	query, args, err := Select("id").From("players").
		Where(Eq("squad", "Inter"), Expr("goals BETWEEN ? AND ?", 10, 20)).
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM players WHERE squad = $1 AND goals BETWEEN $2 AND $3", query)
	assert.Equal(t, []any{"Inter", 10, 20}, args)
}

func TestInsert(t *testing.T) {
	query, args, err := InsertInto("players", "id", "name").
		Row(int64(1), "Haaland").
		Row(int64(2), "Saka").
		Suffix("RETURNING id").
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO players (id, name) VALUES ($1, $2), ($3, $4) RETURNING id", query)
	assert.Equal(t, []any{int64(1), "Haaland", int64(2), "Saka"}, args)

	_, _, err = InsertInto("players", "id", "name").Row(int64(1)).ToSQL()
	assert.Error(t, err)
	_, _, err = InsertInto("players", "id").ToSQL()
	assert.Error(t, err)
}

func TestUpdate(t *testing.T) {
	query, args, err := Update("dataset_versions").
		SetExpr("version", "version + 1").
		Set("source", "fbref").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", 1)).
		Suffix("RETURNING version").
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE dataset_versions SET version = version + 1, source = $1, updated_at = NOW() WHERE id = $2 RETURNING version", query)
	assert.Equal(t, []any{"fbref", 1}, args)

	_, _, err = Update("dataset_versions").ToSQL()
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	query, args, err := DeleteFrom("players").ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM players", query)
	assert.Empty(t, args)

	query, args, err = DeleteFrom("players").Where(Eq("competition", "Bundesliga")).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM players WHERE competition = $1", query)
	assert.Equal(t, []any{"Bundesliga"}, args)
}

func TestInsertModels(t *testing.T) {
	type row struct {
		ID     int64  `db:"id"`
		Name   string `db:"name,omitempty"`
		Note   string `db:"-"`
		Squad  string
		hidden int `db:"hidden"`
	}

	query, args, err := InsertModels("players", []row{{ID: 1, Name: "Rice"}, {ID: 2, Name: "Odegaard", hidden: 3}}, "")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO players (id, name) VALUES ($1, $2), ($3, $4)", query)
	assert.Equal(t, []any{int64(1), "Rice", int64(2), "Odegaard"}, args)

	_, _, err = InsertModels[row]("players", nil, "")
	assert.Error(t, err)

	_, _, err = InsertModels("players", []int{1}, "")
	assert.Error(t, err)
}
