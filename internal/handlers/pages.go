package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/render"
	"github.com/assurcompare/comparator-backend/internal/rewrite"
	"github.com/assurcompare/comparator-backend/internal/services"
	"github.com/assurcompare/comparator-backend/internal/utils"
)

type PageHandler struct {
	log      *logger.Logger
	pages    services.PageService
	resolve  services.ResolveService
	renderer *render.Renderer
}

func NewPageHandler(
	log *logger.Logger,
	pages services.PageService,
	resolve services.ResolveService,
	renderer *render.Renderer,
) *PageHandler {
	return &PageHandler{
		log:      log.With("handler", "PageHandler"),
		pages:    pages,
		resolve:  resolve,
		renderer: renderer,
	}
}

type createPageRequest struct {
	Type  string `json:"type"`
	Item1 string `json:"item1"`
	Item2 string `json:"item2"`
}

// Create is the programmatic get-or-create endpoint for a comparison page.
func (h *PageHandler) Create(c *gin.Context) {
	var req createPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := h.pages.GetOrCreatePage(c.Request.Context(), req.Type, req.Item1, req.Item2)
	if err != nil {
		RespondAPIErr(c, err)
		return
	}
	RespondOK(c, result)
}

// RedirectDynamic resolves ad hoc ?type=&compare=a,b queries to the
// materialized page and 301s to its canonical address, and sends
// ?type=&single=item queries to the single-item surface. Any resolution
// failure falls through to normal routing.
func (h *PageHandler) RedirectDynamic() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		typeSlug := c.Query("type")
		if typeSlug == "" {
			c.Next()
			return
		}

		if single := c.Query("single"); single != "" {
			q := url.Values{"type": {typeSlug}, "item": {single}}
			c.Redirect(http.StatusFound, "/comparator/single?"+q.Encode())
			c.Abort()
			return
		}

		compare := c.Query("compare")
		if compare == "" {
			c.Next()
			return
		}
		slugs := strings.Split(compare, ",")
		if len(slugs) != 2 {
			c.Next()
			return
		}

		result, err := h.pages.GetOrCreatePage(c.Request.Context(), typeSlug, slugs[0], slugs[1])
		if err != nil {
			h.log.Debug("dynamic comparison query did not resolve, falling through", "type", typeSlug, "compare", compare, "error", err)
			c.Next()
			return
		}
		c.Redirect(http.StatusMovedPermanently, "/"+result.Slug)
		c.Abort()
	}
}

// View serves the pretty permalink from the router's NoRoute hook.
// Materialized pages are looked up by their stored slug first, the way the
// host CMS serves pages by path; this is what handles item slugs that
// themselves contain hyphens. The rewrite regex only covers URLs no page
// was materialized for yet. Everything else stays a 404.
func (h *PageHandler) View(c *gin.Context) {
	if slug := pageSlugFromPath(c.Request.URL.Path); slug != "" {
		pv, err := h.pages.GetPageView(c.Request.Context(), slug)
		if err != nil {
			h.log.Warn("page lookup failed", "path", c.Request.URL.Path, "error", err)
		}
		if pv != nil {
			h.viewStored(c, pv)
			return
		}
	}

	vars, ok := rewrite.ParseComparePath(c.Request.URL.Path)
	if !ok {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	view, err := h.resolve.ResolveCompare(c.Request.Context(), nil, vars.TypeSlug, vars.Item1Slug+","+vars.Item2Slug)
	if err != nil {
		h.log.Warn("comparison permalink did not resolve", "path", c.Request.URL.Path, "error", err)
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	title := view.Type.CustomTitle
	if title != "" {
		title = services.SubstitutePlaceholders(title, view.Item1, view.Item2)
	} else {
		title = "Prévoyance : Comparaison du contrat " + view.Item1.Name + " et " + view.Item2.Name
	}

	data := &render.PageData{
		Title:         title,
		CanonicalPath: rewrite.ComparePath(view.Type.Slug, view.Item1.Slug, view.Item2.Slug),
		Compare:       render.BuildCompareData(view),
	}
	h.fillTypeMeta(data, view)

	h.renderPage(c, data)
}

// viewStored renders a materialized page from its stored row: stored
// title, stored triple, persisted SEO meta. Type templates are only a
// fallback when no meta was persisted.
func (h *PageHandler) viewStored(c *gin.Context, pv *services.PageView) {
	page := pv.Page
	view, err := h.resolve.ResolveCompare(c.Request.Context(), nil, page.TypeSlug, page.Item1Slug+","+page.Item2Slug)
	if err != nil {
		h.log.Warn("stored page no longer resolves", "slug", page.Slug, "error", err)
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	data := &render.PageData{
		Title:           page.Title,
		MetaTitle:       pv.MetaTitle,
		MetaDescription: pv.MetaDescription,
		CanonicalPath:   "/" + page.Slug,
		Compare:         render.BuildCompareData(view),
	}
	h.fillTypeMeta(data, view)

	h.renderPage(c, data)
}

func (h *PageHandler) fillTypeMeta(data *render.PageData, view *services.CompareView) {
	if data.MetaTitle == "" && view.Type.MetaTitle != "" {
		data.MetaTitle = services.SubstitutePlaceholders(view.Type.MetaTitle, view.Item1, view.Item2)
	}
	if data.MetaDescription == "" && view.Type.MetaDescription != "" {
		data.MetaDescription = services.SubstitutePlaceholders(view.Type.MetaDescription, view.Item1, view.Item2)
	}
	if data.Intro == "" && view.Type.IntroText != "" {
		data.Intro = services.SubstitutePlaceholders(view.Type.IntroText, view.Item1, view.Item2)
	}
}

func (h *PageHandler) renderPage(c *gin.Context, data *render.PageData) {
	markup, err := h.renderer.Page(data)
	if err != nil {
		h.log.Error("page render failed", "path", c.Request.URL.Path, "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	respondHTML(c, markup)
}

// pageSlugFromPath maps a request path to a candidate page slug: one
// segment, optional .html suffix, optional trailing slash, normalized the
// same way the slug was derived at materialization.
func pageSlugFromPath(path string) string {
	slug := strings.Trim(path, "/")
	slug = strings.TrimSuffix(slug, ".html")
	if slug == "" || strings.Contains(slug, "/") {
		return ""
	}
	return utils.NormalizeSlug(slug)
}
