package v1

import (
	"net/http"

	"skillmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type PostingHandler struct {
	postingUC domain.PostingUsecase
}

func NewPostingHandler(public *gin.RouterGroup, postingUC domain.PostingUsecase) {
	handler := &PostingHandler{postingUC: postingUC}

	public.GET("/internships", handler.Internships)
	public.GET("/hackathons", handler.Hackathons)
	public.GET("/all", handler.All)
}

// Internships godoc
// @Summary      List internships
// @Description  Every internship in the catalog, each with its id
// @Tags         postings
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  response.Response
// @Router       /internships [get]
func (h *PostingHandler) Internships(c *gin.Context) {
	h.list(c, domain.PostingInternship)
}

// Hackathons godoc
// @Summary      List hackathons
// @Description  Every hackathon in the catalog, each with its id
// @Tags         postings
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  response.Response
// @Router       /hackathons [get]
func (h *PostingHandler) Hackathons(c *gin.Context) {
	h.list(c, domain.PostingHackathon)
}

func (h *PostingHandler) list(c *gin.Context, t domain.PostingType) {
	postings, err := h.postingUC.List(c.Request.Context(), t)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, postings)
}

// All godoc
// @Summary      List all postings
// @Description  Hackathons followed by internships
// @Tags         postings
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  response.Response
// @Router       /all [get]
func (h *PostingHandler) All(c *gin.Context) {
	postings, err := h.postingUC.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, postings)
}
