package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/advisorkit/fna_app/internal/core/ports/services"
	"github.com/advisorkit/fna_app/internal/export"
	"github.com/advisorkit/fna_app/internal/platform/config"
)

// reportHandler handles HTTP requests for report generation and delivery.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
	renderer      *export.HTMLRenderer
	emailSender   *export.EmailSender
}

func newReportHandler(rs portssvc.ReportSvcFacade, renderer *export.HTMLRenderer, sender *export.EmailSender) *reportHandler {
	return &reportHandler{reportService: rs, renderer: renderer, emailSender: sender}
}

// registerReportRoutes registers the report route.
func registerReportRoutes(rg *gin.RouterGroup, cfg *config.Config, reportService portssvc.ReportSvcFacade) {
	renderer, err := export.NewHTMLRenderer()
	if err != nil {
		// The template is embedded; failing to parse it is a programming error.
		panic(err)
	}
	sender := export.NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)

	h := newReportHandler(reportService, renderer, sender)
	rg.GET("/clients/:clientID/report", h.getReport)
}

// getReport godoc
// @Summary Generate a client report
// @Description Composes the analysis report from the current plan snapshot. Format json returns the document data, html a printable page, xml an interchange document. email=1 mails the HTML rendition to the client.
// @Tags reports
// @Produce json
// @Param clientID path string true "Client ID"
// @Param format query string false "Output format: json, html or xml" default(json)
// @Param email query string false "Set to 1 to email the report to the client"
// @Success 200 {object} domain.ReportDocument
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{clientID}/report [get]
func (h *reportHandler) getReport(c *gin.Context) {
	logger := requestLogger(c)
	clientID := c.Param("clientID")
	format := c.DefaultQuery("format", "json")

	doc, err := h.reportService.ComposeReport(c.Request.Context(), clientID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compose report")
		return
	}

	if c.Query("email") == "1" {
		if !h.emailSender.Configured() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email delivery is not configured"})
			return
		}
		if doc.Client.Email == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Client has no email address on file"})
			return
		}
		body, err := h.renderer.Render(doc)
		if err != nil {
			logger.Error("Failed to render report for email", "error", err.Error())
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render report"})
			return
		}
		subject := fmt.Sprintf("%s - %s", doc.Cover.Title, doc.Cover.ClientName)
		if err := h.emailSender.SendReport(doc.Client.Email, subject, body); err != nil {
			logger.Error("Failed to email report", "error", err.Error())
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to email report"})
			return
		}
		logger.Info("Report emailed", "client_id", clientID)
	}

	switch format {
	case "json":
		c.JSON(http.StatusOK, doc)
	case "html":
		body, err := h.renderer.Render(doc)
		if err != nil {
			logger.Error("Failed to render report", "error", err.Error())
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render report"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", body)
	case "xml":
		body, err := export.RenderXML(doc)
		if err != nil {
			logger.Error("Failed to render report XML", "error", err.Error())
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render report"})
			return
		}
		c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported format: " + format})
	}
}
