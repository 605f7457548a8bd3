package v1

import (
	"net/http"

	"skillmatch-backend/internal/delivery/http/middleware"
	"skillmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUC domain.MatchUsecase
}

func NewMatchHandler(protected *gin.RouterGroup, matchUC domain.MatchUsecase) {
	handler := &MatchHandler{matchUC: matchUC}

	protected.GET("/matching_internships", handler.Internships)
	protected.GET("/matching_hackathons", handler.Hackathons)
}

// MatchingInternships godoc
// @Summary      Rank internships for the caller
// @Description  Internships ordered by the share of required skills the user has
// @Tags         matching
// @Produce      json
// @Success      200  {array}   domain.MatchResult
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /matching_internships [get]
// @Security     BearerAuth
func (h *MatchHandler) Internships(c *gin.Context) {
	h.recommend(c, domain.PostingInternship)
}

// MatchingHackathons godoc
// @Summary      Rank hackathons for the caller
// @Description  Hackathons ordered by the share of required skills the user has
// @Tags         matching
// @Produce      json
// @Success      200  {array}   domain.MatchResult
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /matching_hackathons [get]
// @Security     BearerAuth
func (h *MatchHandler) Hackathons(c *gin.Context) {
	h.recommend(c, domain.PostingHackathon)
}

func (h *MatchHandler) recommend(c *gin.Context, t domain.PostingType) {
	results, err := h.matchUC.Recommend(c.Request.Context(), middleware.UserID(c), t)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, results)
}
