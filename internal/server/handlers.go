package server

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/anmicius0/idea-validator/internal/config"
	"github.com/anmicius0/idea-validator/internal/service"
	"github.com/anmicius0/idea-validator/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Validator is the validation boundary the handlers call; *service.IdeaValidator satisfies it.
type Validator interface {
	ValidateRequest(ctx context.Context, req config.ValidationRequest) config.ValidationResult
}

// Handler bundles request-time dependencies for the routes.
type Handler struct {
	validator Validator
	log       *zap.Logger
}

// newHandler constructs a Handler with attached dependencies.
func newHandler(validator Validator) *Handler {
	return &Handler{
		validator: validator,
		log:       utils.WithComponent("handler"),
	}
}

// pageData feeds templates/index.html.
type pageData struct {
	APIKey         string
	Idea           string
	Message        string
	Assessment     template.HTML
	AssessmentText string
	Error          string
	Hint           string
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": StatusHealthy})
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{})
}

func (h *Handler) validateForm(c *gin.Context) {
	var form validateForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Warn("Invalid form body", zap.Error(err))
		c.HTML(http.StatusBadRequest, "index.html", pageData{Error: MessageInvalidRequestBody})
		return
	}

	result := h.validator.ValidateRequest(c.Request.Context(), config.ValidationRequest{
		Credential: form.APIKey,
		IdeaText:   form.Idea,
	})

	data := pageData{APIKey: form.APIKey, Idea: form.Idea}
	if !result.OK() {
		data.Error = service.UserMessage(result)
		if service.NeedsHint(result) {
			data.Hint = service.MessageRemediationHint
		}
		c.HTML(StatusFor(result), "index.html", data)
		return
	}

	rendered, err := renderMarkdown(result.AssessmentText)
	if err != nil {
		h.log.Warn("Falling back to plain assessment", zap.Error(err))
		rendered = template.HTML("<pre>" + template.HTMLEscapeString(result.AssessmentText) + "</pre>")
	}
	data.Message = MessageValidationComplete
	data.Assessment = rendered
	data.AssessmentText = result.AssessmentText
	c.HTML(http.StatusOK, "index.html", data)
}

func (h *Handler) reportForm(c *gin.Context) {
	var form reportForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusUnprocessableEntity, MessageInvalidRequestBody)
		return
	}
	sendReport(c, form)
}

func (h *Handler) validateAPI(c *gin.Context) {
	var body validateAPIRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.log.Warn("Invalid request body", zap.Error(err))
		respBuilder := newResponseBuilder()
		c.JSON(http.StatusUnprocessableEntity, respBuilder.BuildErrorResponse(
			ErrorCodeInvalidRequestBody,
			MessageInvalidRequestBody,
			err.Error(),
		))
		return
	}

	result := h.validator.ValidateRequest(c.Request.Context(), config.ValidationRequest{
		Credential: c.GetString(ctxCredential),
		IdeaText:   body.Idea,
	})

	respBuilder := newResponseBuilder()
	c.JSON(StatusFor(result), respBuilder.BuildValidationResponse(result, c.GetString(ctxRequestID)))
}

func (h *Handler) reportAPI(c *gin.Context) {
	var body reportForm
	if err := c.ShouldBindJSON(&body); err != nil {
		respBuilder := newResponseBuilder()
		c.JSON(http.StatusUnprocessableEntity, respBuilder.BuildErrorResponse(
			ErrorCodeInvalidRequestBody,
			MessageInvalidRequestBody,
			err.Error(),
		))
		return
	}
	sendReport(c, body)
}

func sendReport(c *gin.Context, form reportForm) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.ReportFileName))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(service.BuildReport(form.Idea, form.Assessment)))
}

// credentialMiddleware lifts a bearer token into the context. A missing token is not
// rejected here; the validation boundary reports it as MissingCredential.
func credentialMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if credential, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
			c.Set(ctxCredential, strings.TrimSpace(credential))
		}
		c.Next()
	}
}
