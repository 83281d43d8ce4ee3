package memory

import "github.com/riskibarqy/football-stats/internal/domain/player"

const (
	CompetitionPremierLeague = "Premier League"
	CompetitionLaLiga        = "La Liga"
	CompetitionSerieA        = "Serie A"
	CompetitionBundesliga    = "Bundesliga"
)

type seedRow struct {
	name, nation, position, squad, competition string
	age, matches, starts, minutes              int
	goals, assists, npg, pkMade, pkAtt         int
	yellow, red                                int
	xg, npxg, xa                               float64
	prgC, prgP, prgR                           int
}

var seedRows = []seedRow{
	{"Erling Haaland", "NOR", "FW", "Manchester City", CompetitionPremierLeague, 23, 31, 29, 2552, 27, 5, 20, 7, 8, 1, 0, 29.2, 23.1, 3.4, 17, 24, 98},
	{"Bukayo Saka", "ENG", "FW,MF", "Arsenal", CompetitionPremierLeague, 22, 35, 35, 2929, 16, 9, 11, 5, 6, 4, 0, 15.4, 10.9, 9.8, 120, 130, 301},
	{"Cole Palmer", "ENG", "MF,FW", "Chelsea", CompetitionPremierLeague, 21, 34, 33, 2616, 22, 11, 13, 9, 9, 6, 0, 16.1, 9.6, 9.5, 77, 112, 205},
	{"Martin Ødegaard", "NOR", "MF", "Arsenal", CompetitionPremierLeague, 25, 35, 35, 3049, 8, 10, 8, 0, 0, 3, 0, 7.1, 7.1, 10.4, 62, 270, 160},
	{"William Saliba", "FRA", "DF", "Arsenal", CompetitionPremierLeague, 23, 38, 38, 3420, 2, 1, 2, 0, 0, 3, 0, 1.9, 1.9, 0.8, 24, 167, 6},
	{"Virgil van Dijk", "NED", "DF", "Liverpool", CompetitionPremierLeague, 32, 36, 36, 3240, 2, 2, 2, 0, 0, 5, 0, 3.8, 3.8, 1.2, 21, 196, 3},
	{"Alisson", "BRA", "GK", "Liverpool", CompetitionPremierLeague, 31, 28, 28, 2520, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0.2, 0, 1, 0},
	{"David Raya", "ESP", "GK", "Arsenal", CompetitionPremierLeague, 28, 32, 32, 2880, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0},
	{"Jude Bellingham", "ENG", "MF,FW", "Real Madrid", CompetitionLaLiga, 20, 28, 28, 2309, 19, 6, 16, 3, 3, 9, 1, 12.7, 10.3, 5.4, 60, 88, 173},
	{"Vinicius Júnior", "BRA", "FW", "Real Madrid", CompetitionLaLiga, 23, 26, 24, 2051, 15, 5, 13, 2, 3, 7, 0, 14.3, 12.0, 6.9, 141, 52, 304},
	{"Robert Lewandowski", "POL", "FW", "Barcelona", CompetitionLaLiga, 35, 35, 32, 2820, 19, 8, 15, 4, 5, 3, 0, 20.8, 16.9, 4.8, 15, 62, 120},
	{"Pedri", "ESP", "MF", "Barcelona", CompetitionLaLiga, 21, 24, 16, 1460, 2, 3, 2, 0, 0, 4, 0, 1.8, 1.8, 3.2, 36, 108, 55},
	{"Dani Carvajal", "ESP", "DF", "Real Madrid", CompetitionLaLiga, 32, 28, 27, 2348, 4, 4, 4, 0, 0, 6, 1, 2.2, 2.2, 2.9, 44, 136, 48},
	{"Marc-André ter Stegen", "GER", "GK", "Barcelona", CompetitionLaLiga, 31, 28, 28, 2520, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0.1, 0, 3, 0},
	{"Lautaro Martínez", "ARG", "FW", "Inter", CompetitionSerieA, 26, 33, 31, 2629, 24, 3, 21, 3, 4, 5, 0, 19.6, 16.6, 3.4, 25, 40, 180},
	{"Hakan Çalhanoğlu", "TUR", "MF", "Inter", CompetitionSerieA, 30, 32, 31, 2661, 13, 3, 2, 11, 11, 6, 0, 9.6, 1.0, 3.6, 29, 229, 31},
	{"Alessandro Bastoni", "ITA", "DF", "Inter", CompetitionSerieA, 25, 28, 28, 2271, 1, 4, 1, 0, 0, 2, 0, 1.4, 1.4, 4.1, 50, 152, 30},
	{"Yann Sommer", "SUI", "GK", "Inter", CompetitionSerieA, 35, 34, 34, 3060, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{"Harry Kane", "ENG", "FW", "Bayern Munich", CompetitionBundesliga, 30, 32, 32, 2817, 36, 8, 28, 8, 8, 3, 0, 31.4, 24.5, 6.3, 45, 117, 150},
	{"Jamal Musiala", "GER", "MF,FW", "Bayern Munich", CompetitionBundesliga, 20, 24, 18, 1621, 10, 6, 10, 0, 0, 1, 0, 8.2, 8.2, 4.5, 92, 55, 193},
	{"Florian Wirtz", "GER", "MF", "Leverkusen", CompetitionBundesliga, 20, 32, 28, 2360, 11, 11, 11, 0, 1, 4, 0, 8.9, 8.1, 9.6, 140, 185, 237},
	{"Alejandro Grimaldo", "ESP", "DF", "Leverkusen", CompetitionBundesliga, 28, 33, 33, 2711, 10, 12, 9, 1, 1, 4, 0, 5.4, 4.6, 8.1, 100, 211, 77},
	{"Lukáš Hrádecký", "FIN", "GK", "Leverkusen", CompetitionBundesliga, 34, 34, 34, 3060, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0},
	{"Jonas Hector", "GER", "DF", "Köln", CompetitionBundesliga, 33, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

// SeedPlayers is the sample dataset for the memory backend. Ids are 1..n in
// table order and per-90 columns are recomputed.
func SeedPlayers() []player.Player {
	out := make([]player.Player, 0, len(seedRows))
	for i, row := range seedRows {
		p := player.Player{
			ID:                     int64(i + 1),
			Name:                   row.name,
			Nation:                 row.nation,
			Position:               row.position,
			Squad:                  row.squad,
			Competition:            row.competition,
			Age:                    row.age,
			MatchesPlayed:          row.matches,
			MatchesStarted:         row.starts,
			MinutesPlayed:          row.minutes,
			Goals:                  row.goals,
			Assists:                row.assists,
			GoalsAssists:           row.goals + row.assists,
			GoalsNoPenalty:         row.npg,
			PenaltiesMade:          row.pkMade,
			PenaltiesAttempted:     row.pkAtt,
			YellowCards:            row.yellow,
			RedCards:               row.red,
			ExpectedGoals:          row.xg,
			ExpectedGoalsNoPenalty: row.npxg,
			ExpectedAssists:        row.xa,
			ExpectedGoalsAssists:   row.xg + row.xa,
			ProgressiveCarries:     row.prgC,
			ProgressivePasses:      row.prgP,
			ProgressiveDribbles:    row.prgR,
		}
		p.FillPer90()
		out = append(out, p)
	}
	return out
}
