package v1

import (
	"errors"
	"io"
	"net/http"

	"skillmatch-backend/internal/delivery/http/middleware"
	"skillmatch-backend/internal/domain"
	"skillmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for boundaries and part headers on top of
// the file limit.
const multipartOverhead = 1 << 20

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
	maxBytes int64
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase, maxBytes int64, limits ...gin.HandlerFunc) {
	handler := &ResumeHandler{resumeUC: resumeUC, maxBytes: maxBytes}

	protected.POST("/upload-resume", append(limits, handler.Upload)...)
}

type UploadResumeResponse struct {
	Success         bool     `json:"success"`
	ExtractedSkills []string `json:"extractedSkills"`
}

// UploadResume godoc
// @Summary      Upload a resume
// @Description  Extracts text and skills from a PDF resume and merges the skills into the caller's profile
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "Resume PDF (max 10 MiB)"
// @Success      200     {object}  UploadResumeResponse
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      413     {object}  response.Response
// @Failure      422     {object}  response.Response
// @Failure      503     {object}  response.Response
// @Router       /upload-resume [post]
// @Security     BearerAuth
func (h *ResumeHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.TooLarge(err))
			return
		}
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}
	if fileHeader.Size > h.maxBytes {
		c.Error(apperror.TooLarge(nil))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	skills, err := h.resumeUC.Upload(c.Request.Context(), middleware.UserID(c), domain.ResumeFile{
		Filename:    fileHeader.Filename,
		ContentType: http.DetectContentType(data),
		Data:        data,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, UploadResumeResponse{Success: true, ExtractedSkills: skills})
}
