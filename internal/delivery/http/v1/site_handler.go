package v1

import (
	"encoding/xml"
	"net/http"
	"time"

	"sportloods-backend/internal/content"
	"sportloods-backend/internal/usecase"
	"sportloods-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	doc      *content.Document
	siteURL  string
	healthUC usecase.HealthUsecase
	now      func() time.Time
}

// NewSiteHandler registers the sitemap at the root and health under the API group
func NewSiteHandler(root *gin.Engine, api *gin.RouterGroup, doc *content.Document, siteURL string, healthUC usecase.HealthUsecase) {
	handler := &SiteHandler{
		doc:      doc,
		siteURL:  siteURL,
		healthUC: healthUC,
		now:      time.Now,
	}

	root.GET("/sitemap.xml", handler.Sitemap)
	api.GET("/health", handler.Health)
}

// Sitemap godoc
// @Summary      Sitemap
// @Description  Home page and both legal pages.
// @Tags         site
// @Produce      xml
// @Success      200
// @Router       /sitemap.xml [get]
func (h *SiteHandler) Sitemap(c *gin.Context) {
	body, err := xml.Marshal(h.doc.Sitemap(h.siteURL, h.now()))
	if err != nil {
		_ = c.Error(apperror.Internal(err))
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}

// Health godoc
// @Summary      Health Check
// @Tags         site
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/health [get]
func (h *SiteHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Check(c.Request.Context()))
}
