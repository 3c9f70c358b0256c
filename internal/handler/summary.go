package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hooplytics/playtype-stats-service/internal/service"
	"github.com/hooplytics/playtype-stats-service/pkg/response"
)

type SummaryHandler struct {
	svc service.SummaryService
}

func NewSummaryHandler(svc service.SummaryService) *SummaryHandler { return &SummaryHandler{svc: svc} }

func (h *SummaryHandler) Register(r *gin.RouterGroup) {
	r.GET("/playerSummary/:player_id", h.getPlayerSummary)
}

// getPlayerSummary serves the per-action-type rollup for one player.
// Player identifiers start at 0 in the source data, so only the parse is
// validated, not positivity.
func (h *SummaryHandler) getPlayerSummary(c *gin.Context) {
	start := time.Now()
	idStr := c.Param("player_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "player_id", Message: "must be a valid integer"}}))
		return
	}

	summary, err := h.svc.GetPlayerSummary(c.Request.Context(), id)

	logger := log.With().
		Str("path", c.Request.URL.Path).
		Int64("player_id", id).
		Dur("duration", time.Since(start)).
		Logger()

	if err != nil {
		status, _ := response.MapError(err)
		logger.Error().Err(err).Int("status", status).Msg("failed to get player summary")
		response.WriteError(c, err)
		return
	}

	logger.Info().Int("status", http.StatusOK).Msg("player summary retrieved")
	response.WriteData(c, http.StatusOK, summary)
}
