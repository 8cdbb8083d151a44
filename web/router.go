package web

import (
	"net/http"
	"time"

	"github.com/D-vidDo/league_manager/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/unrolled/render"
	"golang.org/x/time/rate"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.AllowAll().Handler)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", listTeamsHandler(ctrl, render))
		r.Get("/{teamID}", getTeamHandler(ctrl, render))
		r.Get("/{teamID}/players", teamPlayersHandler(ctrl, render))
		r.Get("/{teamID}/games", teamGamesHandler(ctrl, render))
		r.Get("/{teamID}/trades", teamTradesHandler(ctrl, render))
	})

	r.Route("/players", func(r chi.Router) {
		r.Get("/", listPlayersHandler(ctrl, render))
		r.Get("/free-agents", freeAgentsHandler(ctrl, render))
		r.Get("/{playerID}", getPlayerHandler(ctrl, render))
	})

	r.Get("/games/{gameID}", getGameHandler(ctrl, render))
	r.Get("/standings", standingsHandler(ctrl, render))
	r.Get("/trades", listTradesHandler(ctrl, render))
	r.Get("/ratings/top", topPerformersHandler(ctrl, render))

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("league", map[string]string{"admin": "pa55word"})) // TODO: read from DB instead
		r.Use(middleware.Timeout(30 * time.Second))                                   // Set a longer timeout for /admin actions
		r.Use(throttle(rate.NewLimiter(rate.Every(time.Second), 5)))

		r.Post("/teams", saveTeamHandler(ctrl, render))
		r.Post("/players", savePlayerHandler(ctrl, render))
		r.Post("/moves", movePlayerHandler(ctrl, render))
		r.Post("/trades", recordTradeHandler(ctrl, render))
		r.Post("/games", addGameHandler(ctrl, render))
		r.Post("/games/{gameID}/sets", recordSetsHandler(ctrl, render))
		r.Post("/teams/{teamID}/recalculate", recalculateHandler(ctrl, render))
	})

	return r
}

// throttle rejects admin writes beyond the limiter's burst instead of
// queueing them; manual data entry never legitimately bursts.
func throttle(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
