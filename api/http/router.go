package http

import (
	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	"github.com/artem13815/skilllens/api/http/handlers"
	"github.com/artem13815/skilllens/api/http/middleware"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Health      *handlers.HealthHandler
	Resume      *handlers.ResumeHandler
	Leaderboard *handlers.LeaderboardHandler
	Badges      *handlers.BadgeHandler
	Stats       *handlers.StatsHandler
	Simulator   *handlers.SimulatorHandler
	Learning    *handlers.LearningHandler
	Roadmap     *handlers.RoadmapHandler
}

// Register wires all HTTP routes onto given Fiber app. authMW guards the
// caller-specific routes. Signup, login and upload are each throttled by
// their own limiter from limits, so they never share a per-IP budget.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler, limits middleware.Limits) {
	app.Get("/", handlers.Root)

	// Liveness and readiness for deploy tooling
	app.Get("/health", h.Health.Health)
	app.Get("/ready", h.Health.Ready)
	app.Get("/swagger/*", swagger.HandlerDefault)

	a := app.Group("/auth")
	a.Post("/signup", limits.Signup, h.Auth.Signup)
	a.Post("/login", limits.Login, h.Auth.Login)
	a.Post("/logout", authMW, h.Auth.Logout)
	a.Get("/me", authMW, h.Auth.Me)

	rg := app.Group("/resume", authMW)
	rg.Post("/upload", limits.Upload, h.Resume.Upload)
	rg.Get("/score", h.Resume.Score)
	rg.Get("/history", h.Resume.History)
	rg.Get("/history/:id", h.Resume.Get)
	rg.Delete("/history/:id", h.Resume.Delete)

	app.Get("/leaderboard", h.Leaderboard.Top)
	app.Get("/leaderboard/rank", authMW, h.Leaderboard.Rank)
	app.Get("/peers", authMW, h.Leaderboard.Peers)
	app.Get("/peers/compare/:peer_id", authMW, h.Leaderboard.Compare)

	app.Get("/badges/all", h.Badges.All)
	app.Get("/badges/user", authMW, h.Badges.User)

	app.Get("/stats/overview", h.Stats.Overview)
	app.Get("/stats/progress", authMW, h.Stats.Progress)

	sim := app.Group("/simulator")
	sim.Get("/scenarios", h.Simulator.Scenarios)
	sim.Get("/scenarios/:id", h.Simulator.Scenario)
	sim.Get("/scenarios/:id/questions", h.Simulator.Questions)
	sim.Post("/submit", authMW, h.Simulator.Submit)
	sim.Get("/results", authMW, h.Simulator.Results)

	lg := app.Group("/learning")
	lg.Get("/modules", h.Learning.Modules)
	lg.Get("/modules/:id", h.Learning.Module)
	lg.Get("/recommendations", authMW, h.Learning.Recommendations)
	lg.Post("/progress", authMW, h.Learning.UpdateProgress)
	lg.Get("/progress", authMW, h.Learning.Progress)
	lg.Get("/study-plan", authMW, h.Learning.StudyPlan)

	rm := app.Group("/roadmap")
	rm.Get("/paths", h.Roadmap.Paths)
	rm.Post("/generate", authMW, h.Roadmap.Generate)
	rm.Get("/my-roadmaps", authMW, h.Roadmap.MyRoadmaps)
	rm.Get("/:id/study-plan", authMW, h.Roadmap.StudyPlan)
}
