// ABOUTME: HTTP-level tests for the page and mutation endpoints
// ABOUTME: Exercises redirects, category fallback and the JSON rank responses

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"newsdesk-api/core/domain"
	"newsdesk-api/core/ingest"
	"newsdesk-api/core/interfaces"
	"newsdesk-api/core/saved"
	"newsdesk-api/pkg/config"
)

func newTestRouter(t *testing.T, savedStore, recentStore *memStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cats := config.Categories{
		DefaultCategory:   "tecnologia",
		RecentWindowHours: 48,
		MaxSavedDisplay:   10,
		MaxFeedDisplay:    10,
		List: []config.Category{
			{Name: "tecnologia", Feeds: []string{"https://example.com/tec.rss"}},
			{Name: "economia", Feeds: []string{"https://example.com/eco.rss"}},
		},
	}

	deps := interfaces.Dependencies{
		Fetcher: &stubFetcher{},
		Logger:  stubLogger{},
	}
	ingestSvc := ingest.NewService(deps, cats, savedStore, recentStore)
	savedSvc := saved.NewService(savedStore, recentStore, cats.DefaultCategory, stubLogger{})

	handler := NewHandler(cats, ingestSvc, savedSvc, savedStore, recentStore, stubLogger{})

	router := gin.New()
	router.LoadHTMLGlob("../../web/templates/*")
	handler.RegisterRoutes(router)
	return router
}

func transientItem(link, category string, trend int) domain.Item {
	return domain.NewItem("Título", link, "resumo", "Fonte", category,
		time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC), trend)
}

func TestIndex_RendersPage(t *testing.T) {
	recentStore := &memStore{items: []domain.Item{
		transientItem("https://example.com/a", "tecnologia", 1),
	}}
	router := newTestRouter(t, &memStore{}, recentStore)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "tecnologia") {
		t.Error("page should list the active category")
	}
	if !strings.Contains(body, "https://example.com/a") {
		t.Error("page should list the transient item")
	}
}

func TestIndex_UnknownCategoryFallsBackToDefault(t *testing.T) {
	recentStore := &memStore{items: []domain.Item{
		transientItem("https://example.com/a", "tecnologia", 0),
		transientItem("https://example.com/b", "economia", 0),
	}}
	router := newTestRouter(t, &memStore{}, recentStore)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?categoria=esportes", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "https://example.com/a") {
		t.Error("default category items should be shown")
	}
	if strings.Contains(body, "https://example.com/b") {
		t.Error("other category items should not be shown")
	}
}

func TestSaveItem_RedirectsWithItemCategory(t *testing.T) {
	savedStore := &memStore{}
	recentStore := &memStore{items: []domain.Item{
		transientItem("https://example.com/eco", "economia", 0),
	}}
	router := newTestRouter(t, savedStore, recentStore)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/salvar_noticia/https://example.com/eco", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	loc := w.Header().Get("Location")
	if loc != "/?categoria=economia" {
		t.Errorf("Location = %q, want /?categoria=economia", loc)
	}
	if len(savedStore.items) != 1 {
		t.Fatalf("saved store has %d items, want 1", len(savedStore.items))
	}
	if savedStore.items[0].RelevanceValue() != 0 || savedStore.items[0].TrendFlag != nil {
		t.Error("saved item should carry relevance 0 and no trend flag")
	}
}

func TestSaveItem_UnknownLinkRedirectsToDefault(t *testing.T) {
	router := newTestRouter(t, &memStore{}, &memStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/salvar_noticia/https://example.com/missing", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/?categoria=tecnologia" {
		t.Errorf("Location = %q, want default category", loc)
	}
}

func TestDeleteSaved_RemovesAndRedirects(t *testing.T) {
	savedStore := &memStore{items: []domain.Item{
		transientItem("https://example.com/eco", "economia", 0).AsSaved(),
	}}
	router := newTestRouter(t, savedStore, &memStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/delete_salva/https://example.com/eco", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/?categoria=economia" {
		t.Errorf("Location = %q, want /?categoria=economia", loc)
	}
	if len(savedStore.items) != 0 {
		t.Errorf("saved store has %d items, want 0", len(savedStore.items))
	}
}

type rankResponse struct {
	Success        bool   `json:"success"`
	Link           string `json:"link"`
	NovaRelevancia int    `json:"nova_relevancia"`
	Message        string `json:"message"`
}

func postRank(t *testing.T, router *gin.Engine, path string) rankResponse {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp rankResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v (%s)", err, w.Body.String())
	}
	return resp
}

func TestRankUp(t *testing.T) {
	savedStore := &memStore{items: []domain.Item{
		transientItem("https://example.com/a", "tecnologia", 0).AsSaved(),
	}}
	router := newTestRouter(t, savedStore, &memStore{})

	resp := postRank(t, router, "/rank_up_salva/https://example.com/a")
	if !resp.Success {
		t.Fatalf("success = false, message %q", resp.Message)
	}
	if resp.NovaRelevancia != 1 {
		t.Errorf("nova_relevancia = %d, want 1", resp.NovaRelevancia)
	}
	if resp.Link != "https://example.com/a" {
		t.Errorf("link = %q", resp.Link)
	}
}

func TestRankDown_ClampsAtZero(t *testing.T) {
	savedStore := &memStore{items: []domain.Item{
		transientItem("https://example.com/a", "tecnologia", 0).AsSaved(),
	}}
	router := newTestRouter(t, savedStore, &memStore{})

	resp := postRank(t, router, "/rank_down_salva/https://example.com/a")
	if !resp.Success || resp.NovaRelevancia != 0 {
		t.Errorf("response = %+v, want success with relevance 0", resp)
	}
}

func TestResetRelevance(t *testing.T) {
	item := transientItem("https://example.com/a", "tecnologia", 0).AsSaved()
	item.SetRelevance(7)
	savedStore := &memStore{items: []domain.Item{item}}
	router := newTestRouter(t, savedStore, &memStore{})

	resp := postRank(t, router, "/reset_relevance_salva/https://example.com/a")
	if !resp.Success || resp.NovaRelevancia != 0 {
		t.Errorf("response = %+v, want success with relevance 0", resp)
	}
	if savedStore.items[0].RelevanceValue() != 0 {
		t.Errorf("stored relevance = %d, want 0", savedStore.items[0].RelevanceValue())
	}
}

func TestRankUp_UnknownLink(t *testing.T) {
	router := newTestRouter(t, &memStore{}, &memStore{})

	resp := postRank(t, router, "/rank_up_salva/https://example.com/missing")
	if resp.Success {
		t.Error("success = true, want false for unknown link")
	}
	if !strings.Contains(resp.Message, "aumentar relevância") {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestRefreshFeeds_RedirectsEvenWhenSourcesFail(t *testing.T) {
	router := newTestRouter(t, &memStore{}, &memStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/refresh_feeds?categoria=economia", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/?categoria=economia" {
		t.Errorf("Location = %q, want /?categoria=economia", loc)
	}
}
