package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vysogota0399/bank_ledger/internal/config"
	"github.com/vysogota0399/bank_ledger/internal/servers/api/handlers"
)

func NewRouter(
	cfg *config.Config,
	root *handlers.RootHandler,
	health *handlers.HealthHandler,
	create *handlers.CreateTransactionHandler,
	summary *handlers.SummaryHandler,
	byAccount *handlers.ByAccountHandler,
	timeline *handlers.TimelineHandler,
	recent *handlers.RecentHandler,
	typeDistribution *handlers.TypeDistributionHandler,
) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", root.ServeHTTP)
	r.Get("/health", health.ServeHTTP)
	r.Post("/transactions", create.ServeHTTP)

	r.Route("/api/analytics", func(r chi.Router) {
		r.Get("/summary", summary.ServeHTTP)
		r.Get("/by-account", byAccount.ServeHTTP)
		r.Get("/timeline", timeline.ServeHTTP)
		r.Get("/recent", recent.ServeHTTP)
		r.Get("/type-distribution", typeDistribution.ServeHTTP)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	return r
}
