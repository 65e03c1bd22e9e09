// ABOUTME: Mutation endpoints: save, delete and relevance adjustment
// ABOUTME: Save/delete redirect back to the page; rank endpoints answer JSON

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SaveItem promotes a transient item into the saved store and redirects to
// the page with the item's category.
func (h *Handler) SaveItem(c *gin.Context) {
	link := linkParam(c)
	category, _ := h.saved.Save(c.Request.Context(), link)
	h.redirectToCategory(c, category)
}

// DeleteSaved removes a saved item and redirects to the page with the
// removed item's category.
func (h *Handler) DeleteSaved(c *gin.Context) {
	link := linkParam(c)
	category, _ := h.saved.Delete(c.Request.Context(), link)
	h.redirectToCategory(c, category)
}

// RankUp increments a saved item's relevance by one.
func (h *Handler) RankUp(c *gin.Context) {
	h.adjust(c, nil, 1, "Notícia não encontrada ou erro ao aumentar relevância.")
}

// RankDown decrements a saved item's relevance by one, clamped at zero.
func (h *Handler) RankDown(c *gin.Context) {
	h.adjust(c, nil, -1, "Notícia não encontrada ou erro ao diminuir relevância.")
}

// ResetRelevance sets a saved item's relevance back to zero.
func (h *Handler) ResetRelevance(c *gin.Context) {
	zero := 0
	h.adjust(c, &zero, 0, "Notícia não encontrada ou erro ao resetar relevância.")
}

func (h *Handler) adjust(c *gin.Context, abs *int, delta int, failureMsg string) {
	link := linkParam(c)
	relevance, found := h.saved.AdjustRelevance(c.Request.Context(), link, abs, delta)
	if !found {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"link":    link,
			"message": failureMsg,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"link":            link,
		"nova_relevancia": relevance,
	})
}
