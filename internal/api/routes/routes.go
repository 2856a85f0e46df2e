package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/selamstaff/backend/internal/api/handlers"
)

type Deps struct {
	Candidates *handlers.CandidateHandler
	Employers  *handlers.EmployerHandler
	Agencies   *handlers.AgencyHandler
	Dashboard  *handlers.DashboardHandler
	Export     *handlers.ExportHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// Registration intake (multipart)
	api.POST("/register/candidate", d.Candidates.Register)
	api.POST("/register/employer", d.Employers.Register)
	api.POST("/register/agency", d.Agencies.Register)

	// Review surface, triplicated per entity
	api.GET("/candidates", d.Candidates.List)
	api.GET("/candidates/:id", d.Candidates.Get)
	api.PATCH("/candidates/:id", d.Candidates.Update)
	api.PATCH("/candidates/:id/approve", d.Candidates.Approve)
	api.PATCH("/candidates/:id/reject", d.Candidates.Reject)
	api.DELETE("/candidates/:id", d.Candidates.Delete)

	api.GET("/employers", d.Employers.List)
	api.GET("/employers/:id", d.Employers.Get)
	api.PATCH("/employers/:id", d.Employers.Update)
	api.PATCH("/employers/:id/approve", d.Employers.Approve)
	api.PATCH("/employers/:id/reject", d.Employers.Reject)
	api.PATCH("/employers/:id/verify", d.Employers.Verify)
	api.DELETE("/employers/:id", d.Employers.Delete)

	api.GET("/agencies", d.Agencies.List)
	api.GET("/agencies/:id", d.Agencies.Get)
	api.PATCH("/agencies/:id", d.Agencies.Update)
	api.PATCH("/agencies/:id/approve", d.Agencies.Approve)
	api.PATCH("/agencies/:id/reject", d.Agencies.Reject)
	api.PATCH("/agencies/:id/verify", d.Agencies.Verify)
	api.DELETE("/agencies/:id", d.Agencies.Delete)

	// Dashboard aggregation + export
	api.GET("/stats", d.Dashboard.Stats)
	api.GET("/activity", d.Dashboard.Activity)
	api.GET("/export/:entity", d.Export.Export)
}
