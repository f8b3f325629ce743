package api

import (
	"davenews/feed"
	"davenews/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter constructs a Gin engine serving the feed page and JSON API.
func NewRouter(view *feed.View, log *zap.Logger) *gin.Engine {
	log = logger.OrNop(log)

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log))
	r.SetHTMLTemplate(pageTemplate)

	fc := &feedController{view: view, log: log}
	RegisterPageRoutes(r, fc)
	RegisterFeedRoutes(r, fc)
	RegisterHealthRoutes(r)
	return r
}
