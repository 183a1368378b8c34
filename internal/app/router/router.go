package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dashboardhandler "stock_dashboard/internal/feature/dashboard/transport/handler"
	tickerhandler "stock_dashboard/internal/feature/ticker/transport/handler"
	"stock_dashboard/internal/platform/http/handler"
	jwtmw "stock_dashboard/internal/platform/jwt"
)

// Deps are the handlers and middleware the router mounts.
type Deps struct {
	Dashboard     *dashboardhandler.DashboardHandler
	Tickers       *tickerhandler.TickerHandler
	Health        handler.Stats
	Metrics       http.Handler
	SessionSecret string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	// Public
	r.GET("/healthz", handler.Health(d.Health))
	r.HEAD("/healthz", handler.Health(d.Health))
	r.GET("/internal/metrics", gin.WrapH(d.Metrics))
	r.POST("/sessions", d.Dashboard.CreateSession)

	// Requires a session token
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(d.SessionSecret))
	{
		auth.GET("/tickers", d.Tickers.Candidates)

		auth.GET("/dashboard", d.Dashboard.Get)
		auth.POST("/dashboard/ticker", d.Dashboard.SelectTicker)
		auth.PUT("/dashboard/model", d.Dashboard.SelectModel)
		auth.POST("/dashboard/compare", d.Dashboard.Compare)
		auth.PUT("/dashboard/explore", d.Dashboard.SetExplore)
		auth.POST("/dashboard/explore/refresh", d.Dashboard.RefreshExplore)
	}

	return r
}
