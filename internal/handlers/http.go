package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gitlab.com/TitanInd/sprcalc/internal/calculator"
	"gitlab.com/TitanInd/sprcalc/internal/config"
	"gitlab.com/TitanInd/sprcalc/internal/interfaces"
	"gitlab.com/TitanInd/sprcalc/internal/prompt"
)

type StatusReader interface {
	Last() *calculator.Result
}

type HTTPHandler struct {
	status  StatusReader
	config  interface{}
	session *prompt.Session
	log     interfaces.ILogger
}

// NewHTTPHandler exposes the latest cycle result, read only
func NewHTTPHandler(status StatusReader, sanitizedConfig interface{}, session *prompt.Session, log interfaces.ILogger) *gin.Engine {
	handl := &HTTPHandler{
		status:  status,
		config:  sanitizedConfig,
		session: session,
		log:     log,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthcheck", handl.HealthCheck)
	r.GET("/estimate", handl.GetEstimate)
	r.GET("/config", handl.GetConfig)

	err := r.SetTrustedProxies(nil)
	if err != nil {
		panic(err)
	}

	return r
}

func (h *HTTPHandler) HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": config.BuildVersion,
	})
}

func (h *HTTPHandler) GetEstimate(ctx *gin.Context) {
	res := h.status.Last()
	if res == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no estimate yet"})
		return
	}
	ctx.JSON(http.StatusOK, mapEstimate(res))
}

func (h *HTTPHandler) GetConfig(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, ConfigResponse{
		Config:  h.config,
		Session: mapSession(h.session),
	})
}
