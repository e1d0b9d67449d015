package v1

import (
	"net/http"

	"sportloods-backend/internal/delivery/http/response"
	"sportloods-backend/internal/domain"
	"sportloods-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// maxContactBody bounds the JSON body; the form has five short fields
const maxContactBody = 64 << 10

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limit gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limit, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Sends the studio a notification and the visitor an auto-reply.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      429      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxContactBody)

	var req domain.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.Validation(domain.MsgInvalidRequest))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, domain.MsgContactSent)
}
