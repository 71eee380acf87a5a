package server

import (
	"embed"
	"html/template"
	"time"

	"github.com/anmicius0/idea-validator/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewRouter builds the Gin router serving the form, the JSON API and report downloads.
func NewRouter(validator Validator) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), requestLogger())
	router.SetHTMLTemplate(template.Must(template.New("").ParseFS(templatesFS, "templates/*.html")))

	handler := newHandler(validator)

	router.GET(HealthEndpoint, handler.health)
	router.GET(IndexPath, handler.index)
	router.POST(ValidatePath, handler.validateForm)
	router.POST(ReportPath, handler.reportForm)

	router.POST(APIValidatePath, credentialMiddleware(), handler.validateAPI)
	router.POST(APIReportPath, handler.reportAPI)

	return router
}

// requestIDMiddleware tags each request with a UUID, honouring an incoming X-Request-ID.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(ctxRequestID, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// requestLogger replaces gin.Logger with a zap access log.
func requestLogger() gin.HandlerFunc {
	log := utils.WithComponent("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("Request handled",
			zap.String("method", c.Request.Method),
			zap.String(utils.FieldPath, c.Request.URL.Path),
			zap.Int(utils.FieldStatusCode, c.Writer.Status()),
			zap.String(utils.FieldRequestID, c.GetString(ctxRequestID)),
			zap.Duration(utils.FieldDuration, time.Since(start)))
	}
}
