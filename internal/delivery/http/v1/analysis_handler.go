package v1

import (
	"errors"
	"io"
	"net/http"

	"skillmatch-backend/internal/delivery/http/middleware"
	"skillmatch-backend/internal/domain"
	"skillmatch-backend/pkg/apperror"
	"skillmatch-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AnalysisHandler struct {
	analysisUC domain.AnalysisUsecase
}

func NewAnalysisHandler(protected *gin.RouterGroup, analysisUC domain.AnalysisUsecase, limits ...gin.HandlerFunc) {
	handler := &AnalysisHandler{analysisUC: analysisUC}

	protected.POST("/analysis", append(limits, handler.Analyze)...)
}

// Type is declared first so a missing type is reported before a bad id.
// It is bound as any: a present but non-string type is answered by the
// analysis itself as an invalid type, while "", 0, false and null count as
// missing.
type AnalysisRequest struct {
	Type         any    `json:"type" binding:"required,present" swaggertype:"string"`
	InternshipID string `json:"internshipId" binding:"omitempty,doc_id"`
	HackathonID  string `json:"hackathonId" binding:"omitempty,doc_id"`
}

// TypeName returns the type when it is a string and "" otherwise, which no
// posting type matches.
func (r AnalysisRequest) TypeName() string {
	s, _ := r.Type.(string)
	return s
}

// PostingID returns whichever id the client sent, internship first.
func (r AnalysisRequest) PostingID() string {
	if r.InternshipID != "" {
		return r.InternshipID
	}
	return r.HackathonID
}

type AnalysisResponse struct {
	Success  bool   `json:"success"`
	Analysis string `json:"analysis"`
}

// Analyze godoc
// @Summary      Eligibility analysis
// @Description  Model-written analysis of how well the caller's resume fits a posting. Lookup and model failures are reported in the analysis text with status 200.
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request  body      AnalysisRequest  true  "Posting reference"
// @Success      200      {object}  AnalysisResponse
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /analysis [post]
// @Security     BearerAuth
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(bindMessage(err)))
		return
	}

	postingID := req.PostingID()
	if postingID == "" {
		c.Error(apperror.BadRequest("Missing item id"))
		return
	}

	text := h.analysisUC.Analyze(c.Request.Context(), domain.AnalysisRequest{
		UserID:    middleware.UserID(c),
		PostingID: postingID,
		Type:      req.TypeName(),
	})

	c.JSON(http.StatusOK, AnalysisResponse{Success: true, Analysis: text})
}

func bindMessage(err error) string {
	if errors.Is(err, io.EOF) {
		// empty body
		return "Missing type"
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return validation.FirstMessage(verrs)
	}
	return "Invalid request body"
}
