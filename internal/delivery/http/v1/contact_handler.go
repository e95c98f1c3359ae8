package v1

import (
	"errors"
	"net/http"
	"strings"

	"europlast-backend/internal/contactform"
	"europlast-backend/internal/delivery/http/middleware"
	"europlast-backend/internal/delivery/http/response"
	"europlast-backend/internal/domain"
	"europlast-backend/pkg/apperror"
	"europlast-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	catalogUC domain.CatalogUsecase
}

// NewContactHandler registers the contact routes (public, no auth required).
// submitGuards run before the submit handler only.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, catalogUC domain.CatalogUsecase, submitGuards ...gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
		catalogUC: catalogUC,
	}

	contact := public.Group("/contact")
	{
		contact.POST("", append(submitGuards, handler.SubmitContact)...)
		contact.GET("/info", handler.Info)
	}
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the form and delivers it. Every violated field is reported in `error`.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        X-Form-Session  header    string               false  "Form session; defaults to client IP"
// @Param        contact         body      domain.ContactInput  true   "Contact Form Data"
// @Success      200  {object}  response.Response{data=domain.ContactReceipt}
// @Failure      400  {object}  response.Response{error=domain.FieldErrors}
// @Failure      409  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var input domain.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	req, errs, err := h.contactUC.Validate(input)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	if len(errs) > 0 {
		security.DefaultLogger().LogValidationFailed(c.Request.Context(), c.ClientIP(), middleware.GetRequestID(c), errs.Fields())
		c.Error(apperror.BadRequest("Validation failed").WithDetails(errs))
		return
	}

	meta := domain.ContactMeta{
		ClientKey: clientKey(c),
		ClientIP:  c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: middleware.GetRequestID(c),
	}
	receipt, err := h.contactUC.SendContactMessage(c.Request.Context(), meta, req)
	if err != nil {
		c.Error(contactError(err))
		return
	}

	response.Success(c, http.StatusOK, contactform.SuccessMessage, receipt)
}

// clientKey scopes the one-in-flight rule to a form session, falling back
// to the client address.
func clientKey(c *gin.Context) string {
	if session := strings.TrimSpace(c.GetHeader(contactform.SessionHeader)); session != "" && len(session) <= 64 {
		return "session:" + session
	}
	return "ip:" + c.ClientIP()
}

func contactError(err error) error {
	var derr *domain.DeliveryError
	switch {
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return apperror.Conflict("A submission is already in progress")
	case errors.Is(err, domain.ErrDeliveryUnavailable):
		return apperror.ServiceUnavailable("Contact service temporarily unavailable", err)
	case errors.As(err, &derr):
		return apperror.BadGateway(contactform.FailureMessage, err)
	}
	return err
}

// Info godoc
// @Summary      Contact Information
// @Description  Contact channels, quick-contact options and offices.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ContactInfoPage}
// @Router       /contact/info [get]
func (h *ContactHandler) Info(c *gin.Context) {
	info, err := h.catalogUC.ContactInfo(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact information retrieved", info)
}
