package handlers

import "github.com/gin-gonic/gin"

// Register attaches the API routes and the SPA entry to the router.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/profile/", h.CreateProfile)
		api.GET("/profile/:id", h.GetProfile)
		api.GET("/profiles/", h.ListProfiles)
	}

	r.GET("/", h.Index)
	r.Static("/assets", h.staticDir+"/assets")
}
