package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hooplytics/playtype-stats-service/internal/model"
	"github.com/hooplytics/playtype-stats-service/internal/service"
	"github.com/hooplytics/playtype-stats-service/pkg/response"
)

type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler { return &CatalogHandler{svc: svc} }

func (h *CatalogHandler) Register(r *gin.RouterGroup) {
	r.GET("/players", h.listPlayers)
	r.GET("/teams", h.listTeams)
	r.GET("/games", h.listGames)
}

func (h *CatalogHandler) listPlayers(c *gin.Context) {
	players, err := h.svc.ListPlayers(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if players == nil {
		players = []model.Player{}
	}
	response.WriteData(c, http.StatusOK, players)
}

func (h *CatalogHandler) listTeams(c *gin.Context) {
	teams, err := h.svc.ListTeams(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if teams == nil {
		teams = []model.Team{}
	}
	response.WriteData(c, http.StatusOK, teams)
}

func (h *CatalogHandler) listGames(c *gin.Context) {
	games, err := h.svc.ListGames(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if games == nil {
		games = []model.Game{}
	}
	response.WriteData(c, http.StatusOK, games)
}
