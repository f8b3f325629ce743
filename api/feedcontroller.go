package api

import (
	"context"
	"net/http"

	"davenews/feed"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryRequest selects a feed category
type CategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

// SearchRequest submits a search query. An empty query returns to category browsing.
type SearchRequest struct {
	Query string `json:"query"`
}

type feedController struct {
	view *feed.View
	log  *zap.Logger
}

// RegisterFeedRoutes registers the JSON feed endpoints.
func RegisterFeedRoutes(r *gin.Engine, fc *feedController) {
	r.GET("/api/categories", handleCategories)

	g := r.Group("/api/feed")
	g.GET("", fc.handleSnapshot)
	g.POST("/category", fc.handleSelectCategory)
	g.POST("/search", fc.handleSearch)
	g.POST("/refresh", fc.handleRefresh)
}

// dispatch runs the fetch for req in the background; the view drops it if a
// newer request has been issued by the time it resolves.
func (fc *feedController) dispatch(req feed.Request) {
	fc.log.Debug("fetch dispatched",
		zap.Uint64("seq", req.Seq),
		zap.String("request_id", req.ID),
		zap.String("mode", string(req.Mode())),
	)
	go fc.view.Run(context.Background(), req)
}

func handleCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": feed.Categories()})
}

func (fc *feedController) handleSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, fc.view.Snapshot())
}

func (fc *feedController) handleSelectCategory(c *gin.Context) {
	var body CategoryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := fc.view.SelectCategory(body.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fc.dispatch(req)
	accepted(c, req)
}

func (fc *feedController) handleSearch(c *gin.Context) {
	var body SearchRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := fc.view.SubmitSearch(body.Query)
	fc.dispatch(req)
	accepted(c, req)
}

func (fc *feedController) handleRefresh(c *gin.Context) {
	req := fc.view.Refresh()
	fc.dispatch(req)
	accepted(c, req)
}

func accepted(c *gin.Context, req feed.Request) {
	c.JSON(http.StatusAccepted, gin.H{
		"status":     "fetch started",
		"seq":        req.Seq,
		"request_id": req.ID,
		"mode":       req.Mode(),
	})
}
