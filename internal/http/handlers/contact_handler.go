// Contact HTTP handler.
//
// This file exposes the contact-form endpoint:
//   - POST /contact (multipart form: fields + attachments)
//
// The handler is transport-thin: it collects the form fields and attachment
// metadata, hands them to the gateway service, and maps the service's sentinel
// errors onto the uppercase rejection codes the form client branches on.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pkarali/go-blog-backend/internal/http/middleware"
	"github.com/pkarali/go-blog-backend/internal/services"
)

// SubmitContact godoc
// @ID          submitContact
// @Summary     Submit the contact form
// @Description Accepts a multipart contact submission with optional attachments. Submissions are rate limited per client (5 per 15 minutes), sanitized, validated, and checked against spam heuristics before dispatch.
// @Tags        Contact
// @Accept      multipart/form-data
// @Produce     json
//
// @Param       name         formData  string  true   "Sender name (max 100 chars)"
// @Param       email        formData  string  true   "Sender email address"
// @Param       subject      formData  string  true   "Subject (max 200 chars)"
// @Param       message      formData  string  true   "Message body (10-5000 chars)"
// @Param       company      formData  string  false  "Company name"
// @Param       projectType  formData  string  false  "Project type"   Enums(website, webapp, mobile, consulting, other)
// @Param       budget       formData  string  false  "Budget range"   Enums(under-5k, 5k-10k, 10k-25k, 25k-plus, unsure)
// @Param       timeline     formData  string  false  "Timeline"       Enums(asap, 1-3-months, 3-6-months, flexible)
// @Param       attachments  formData  file    false  "Attachments (max 5 files, 10 MB each)"
//
// @Success     200  {object} handlers.ContactSuccessResponse
// @Failure     400  {object} handlers.ContactErrorResponse "Validation, spam, or attachment rejection"
// @Failure     429  {object} handlers.ContactErrorResponse "Rate limited"
// @Failure     500  {object} handlers.ContactErrorResponse "Dispatch or internal failure"
// @Router      /contact [post]
func (h *Handlers) SubmitContact(c *gin.Context) {
	in := services.ContactInput{
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Subject:     c.PostForm("subject"),
		Message:     c.PostForm("message"),
		Company:     c.PostForm("company"),
		ProjectType: c.PostForm("projectType"),
		Budget:      c.PostForm("budget"),
		Timeline:    c.PostForm("timeline"),
		ClientIP:    c.ClientIP(),
	}

	// Attachment parts are optional; a body without any is a plain form post.
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["attachments"] {
			in.Attachments = append(in.Attachments, services.Attachment{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Size:        fh.Size,
			})
		}
	}

	m, err := h.contactSvc.Submit(c.Request.Context(), in)
	if err != nil {
		status, code := contactStatus(err)
		contactFail(c, status, code, contactMessage(err))
		return
	}

	middleware.LoggerFrom(c).Info().
		Str("message_id", m.ID).
		Int("attachments", m.Attachments).
		Msg("contact submission accepted")

	contactOK(c, "Thank you for your message. We'll get back to you soon.")
}

// contactStatus maps a gateway error to (HTTP status, rejection code).
func contactStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrRateLimited):
		return http.StatusTooManyRequests, ContactCodeRateLimited
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest, ContactCodeValidation
	case errors.Is(err, services.ErrSpamDetected):
		return http.StatusBadRequest, ContactCodeSpam
	case errors.Is(err, services.ErrFileTooLarge):
		return http.StatusBadRequest, ContactCodeFileTooLarge
	case errors.Is(err, services.ErrUnsupportedFileType):
		return http.StatusBadRequest, ContactCodeUnsupportedType
	case errors.Is(err, services.ErrTooManyFiles):
		return http.StatusBadRequest, ContactCodeTooManyFiles
	case errors.Is(err, services.ErrDispatchFailed):
		return http.StatusInternalServerError, ContactCodeEmailFailed
	default:
		return http.StatusInternalServerError, ContactCodeInternal
	}
}

// contactMessage picks the user-facing text for a gateway error. Internal
// failures get a generic message so storage details never leak.
func contactMessage(err error) string {
	for _, sentinel := range []error{
		services.ErrRateLimited,
		services.ErrValidation,
		services.ErrSpamDetected,
		services.ErrFileTooLarge,
		services.ErrUnsupportedFileType,
		services.ErrTooManyFiles,
	} {
		if errors.Is(err, sentinel) {
			return err.Error()
		}
	}
	if errors.Is(err, services.ErrDispatchFailed) {
		return "failed to send your message, please try again later"
	}
	return "internal server error"
}
