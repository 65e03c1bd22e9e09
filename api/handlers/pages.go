// ABOUTME: Presentation controller: index page and feed refresh
// ABOUTME: Assembles the view model from the two stores and the ranking policies

package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"newsdesk-api/core/domain"
	"newsdesk-api/core/ingest"
	"newsdesk-api/core/interfaces"
	"newsdesk-api/core/rank"
	"newsdesk-api/core/saved"
	"newsdesk-api/pkg/config"
)

// Handler serves the HTML page and the mutation endpoints.
type Handler struct {
	categories  config.Categories
	ingest      *ingest.Service
	saved       *saved.Service
	savedStore  interfaces.ItemStore
	recentStore interfaces.ItemStore
	logger      interfaces.Logger
}

// NewHandler wires the presentation controller.
func NewHandler(categories config.Categories, ingestSvc *ingest.Service, savedSvc *saved.Service,
	savedStore, recentStore interfaces.ItemStore, logger interfaces.Logger) *Handler {
	return &Handler{
		categories:  categories,
		ingest:      ingestSvc,
		saved:       savedSvc,
		savedStore:  savedStore,
		recentStore: recentStore,
		logger:      logger,
	}
}

// RegisterRoutes attaches all routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Index)
	router.GET("/refresh_feeds", h.RefreshFeeds)
	router.GET("/salvar_noticia/*link", h.SaveItem)
	router.GET("/delete_salva/*link", h.DeleteSaved)
	router.POST("/rank_up_salva/*link", h.RankUp)
	router.POST("/rank_down_salva/*link", h.RankDown)
	router.POST("/reset_relevance_salva/*link", h.ResetRelevance)
}

// Index renders the main page: saved items in relevance order and the active
// category's feed items in trend order, both sliced to the display limits.
func (h *Handler) Index(c *gin.Context) {
	active := h.categories.Resolve(c.Query("categoria"))

	savedItems, err := h.savedStore.Load(c.Request.Context())
	if err != nil {
		savedItems = nil
	}
	savedOrdered := rank.ByRelevance(savedItems)

	recentItems, err := h.recentStore.Load(c.Request.Context())
	if err != nil {
		recentItems = nil
	}
	var inCategory []domain.Item
	for _, item := range recentItems {
		if item.Category == active {
			inCategory = append(inCategory, item)
		}
	}
	feedOrdered := rank.ByTrend(inCategory)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"categories":      h.categories.Names(),
		"activeCategory":  active,
		"savedItems":      rank.Top(savedOrdered, h.categories.MaxSavedDisplay),
		"totalSaved":      len(savedOrdered),
		"feedItems":       rank.Top(feedOrdered, h.categories.MaxFeedDisplay),
		"totalInCategory": len(feedOrdered),
		"maxFeedDisplay":  h.categories.MaxFeedDisplay,
		"updatedAt":       time.Now().Format("02/01/2006 15:04:05"),
	})
}

// RefreshFeeds runs one ingestion cycle and redirects back to the page,
// preserving the selected category.
func (h *Handler) RefreshFeeds(c *gin.Context) {
	if _, err := h.ingest.Refresh(c.Request.Context()); err != nil {
		h.logger.Error("Feed refresh failed", map[string]interface{}{"error": err.Error()})
	}
	h.redirectToCategory(c, h.categories.Resolve(c.Query("categoria")))
}

func (h *Handler) redirectToCategory(c *gin.Context, category string) {
	c.Redirect(http.StatusFound, "/?categoria="+url.QueryEscape(category))
}

// linkParam extracts the wildcard link parameter without its leading slash.
func linkParam(c *gin.Context) string {
	link := c.Param("link")
	if len(link) > 0 && link[0] == '/' {
		link = link[1:]
	}
	return link
}
