package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/D-vidDo/league_manager/controller"
	"github.com/D-vidDo/league_manager/db"
	"github.com/D-vidDo/league_manager/model"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "league manager api")
	}
}

// renderError maps engine errors onto status codes: unknown references are
// 404, rejected input is 400, everything else is a 500.
func renderError(render *render.Render, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, db.ErrPlayerNotFound),
		errors.Is(err, db.ErrTeamNotFound),
		errors.Is(err, db.ErrGameNotFound):
		render.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, controller.ErrMalformedInput),
		errors.Is(err, controller.ErrInvariantViolation):
		render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		var pf *controller.PartialFailureError
		if errors.As(err, &pf) {
			render.JSON(w, http.StatusInternalServerError, map[string]any{
				"error":     pf.Error(),
				"failed":    pf.Failed,
				"completed": pf.Completed,
			})
			return
		}
		render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func listTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.ListTeams(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func getTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := ctrl.GetTeam(r.Context(), chi.URLParam(r, "teamID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, t)
	}
}

func teamPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := ctrl.GetPlayersByTeam(r.Context(), chi.URLParam(r, "teamID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func teamGamesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := ctrl.ListGamesByTeam(r.Context(), chi.URLParam(r, "teamID"))
		if err != nil {
			renderError(render, w, err)
			return
		}

		// Attach both aggregation views so the client does not redo the math.
		type gameView struct {
			model.Game
			Aggregate *model.GameResult `json:"aggregate,omitempty"`
			SetResult model.Result      `json:"set_result,omitempty"`
		}
		views := make([]gameView, 0, len(games))
		for _, g := range games {
			v := gameView{Game: g}
			if len(g.Sets) > 0 {
				if agg, err := controller.AggregateGame(g.Sets); err == nil {
					v.Aggregate = agg
					v.SetResult = controller.CountSetWins(g.Sets)
				}
			}
			views = append(views, v)
		}
		render.JSON(w, http.StatusOK, views)
	}
}

func teamTradesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := ctrl.GetTeam(r.Context(), chi.URLParam(r, "teamID"))
		if err != nil {
			renderError(render, w, err)
			return
		}

		trades, err := ctrl.GetTeamTradeHistory(r.Context(), t.Name)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, trades)
	}
}

func listPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := ctrl.ListPlayers(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func freeAgentsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := ctrl.GetFreeAgents(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := ctrl.GetPlayer(r.Context(), chi.URLParam(r, "playerID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, p)
	}
}

func getGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := ctrl.GetGame(r.Context(), chi.URLParam(r, "gameID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, g)
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := ctrl.GetStandings(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, standings)
	}
}

func listTradesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trades, err := ctrl.ListTrades(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, trades)
	}
}

func topPerformersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		minGames := intQueryParam(r, "min_games", 5)
		limit := intQueryParam(r, "limit", 10)

		ratings, err := ctrl.GetTopPerformers(r.Context(), minGames, limit)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, ratings)
	}
}

func saveTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var t model.Team
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		if err := ctrl.SaveTeam(r.Context(), &t); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, t)
	}
}

func savePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p model.Player
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		// Accept friendly position names as well as the short codes.
		p.PrimaryPosition = model.ParsePosition(string(p.PrimaryPosition))
		p.SecondaryPosition = model.ParsePosition(string(p.SecondaryPosition))
		if err := ctrl.SavePlayer(r.Context(), &p); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, p)
	}
}

func movePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			PlayerID   string `json:"player_id"`
			FromTeamID string `json:"from_team_id"`
			ToTeamID   string `json:"to_team_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		if err := ctrl.MovePlayer(r.Context(), body.PlayerID, body.FromTeamID, body.ToTeamID); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"status": "moved"})
	}
}

func recordTradeHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Date        string             `json:"date"`
			Description string             `json:"description"`
			Players     []model.TradeEntry `json:"players_traded"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		var date time.Time
		if body.Date != "" {
			var err error
			date, err = time.Parse(time.DateOnly, body.Date)
			if err != nil {
				render.JSON(w, http.StatusBadRequest,
					map[string]string{"error": "unable to parse trade date, expected format is YYYY-MM-DD"})
				return
			}
		}

		trade, err := ctrl.RecordTrade(r.Context(), date, body.Description, body.Players)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, trade)
	}
}

func addGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			TeamID   string      `json:"team_id"`
			Date     string      `json:"date"`
			Time     string      `json:"time"`
			Opponent string      `json:"opponent"`
			Sets     []model.Set `json:"sets"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		g := &model.Game{
			TeamID:   body.TeamID,
			Time:     body.Time,
			Opponent: body.Opponent,
			Sets:     body.Sets,
		}
		if body.Date != "" {
			date, err := time.Parse(time.DateOnly, body.Date)
			if err != nil {
				render.JSON(w, http.StatusBadRequest,
					map[string]string{"error": "unable to parse game date, expected format is YYYY-MM-DD"})
				return
			}
			g.Date = date
		}

		if err := ctrl.AddGame(r.Context(), g); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, g)
	}
}

func recordSetsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			PlayerIDs []string    `json:"player_ids"`
			Sets      []model.Set `json:"sets"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		gameID := chi.URLParam(r, "gameID")
		if err := ctrl.RecordSets(r.Context(), gameID, body.PlayerIDs, body.Sets); err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"status": "recorded"})
	}
}

func recalculateHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := ctrl.RecalculateTeamTotals(r.Context(), chi.URLParam(r, "teamID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, record)
	}
}

func intQueryParam(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
