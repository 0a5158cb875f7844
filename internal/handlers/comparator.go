package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/platform/apierr"
	"github.com/assurcompare/comparator-backend/internal/render"
	"github.com/assurcompare/comparator-backend/internal/services"
)

// Inline messages shown in place of a surface. Lookups and validation
// failures never break the surrounding host page.
const (
	msgTypeMissing    = "Erreur: Type de comparateur non spécifié."
	msgTypeNotFound   = "Erreur: Type de comparateur non trouvé."
	msgCompareMissing = "Erreur: Paramètres manquants pour la comparaison."
	msgExactlyTwo     = "Erreur: Exactement 2 éléments requis pour la comparaison."
	msgItemsNotFound  = "Erreur: Un ou plusieurs éléments non trouvés."
	msgSingleMissing  = "Erreur: Paramètres manquants."
	msgItemNotFound   = "Erreur: Élément non trouvé."
	msgRenderFailed   = "Erreur: Impossible d'afficher le comparateur."
)

type ComparatorHandler struct {
	log            *logger.Logger
	resolve        services.ResolveService
	renderer       *render.Renderer
	maxSelection   int
	filtersEnabled bool
}

func NewComparatorHandler(
	log *logger.Logger,
	resolve services.ResolveService,
	renderer *render.Renderer,
	maxSelection int,
	filtersEnabled bool,
) *ComparatorHandler {
	return &ComparatorHandler{
		log:            log.With("handler", "ComparatorHandler"),
		resolve:        resolve,
		renderer:       renderer,
		maxSelection:   maxSelection,
		filtersEnabled: filtersEnabled,
	}
}

// Grid renders the selection grid fragment for a type.
func (h *ComparatorHandler) Grid(c *gin.Context) {
	typeSlug := c.Query("type")
	if typeSlug == "" {
		respondHTML(c, render.ErrorFragment(msgTypeMissing))
		return
	}
	columns, err := strconv.Atoi(c.DefaultQuery("columns", "3"))
	if err != nil || columns < 1 {
		columns = 3
	}
	showFilters := h.filtersEnabled && c.DefaultQuery("show_filters", "true") == "true"

	view, err := h.resolve.ResolveGrid(c.Request.Context(), nil, typeSlug, showFilters)
	if err != nil {
		respondHTML(c, render.ErrorFragment(h.inlineMessage(err, msgSingleMissing)))
		return
	}

	markup, err := h.renderer.Grid(render.BuildGridData(view, columns, h.maxSelection))
	if err != nil {
		h.log.Error("grid render failed", "type", typeSlug, "error", err)
		respondHTML(c, render.ErrorFragment(msgRenderFailed))
		return
	}
	respondHTML(c, markup)
}

// Compare renders the two-item comparison fragment.
func (h *ComparatorHandler) Compare(c *gin.Context) {
	typeSlug := c.Query("type")
	itemsCSV := c.Query("items")
	if typeSlug == "" || itemsCSV == "" {
		respondHTML(c, render.ErrorFragment(msgCompareMissing))
		return
	}

	view, err := h.resolve.ResolveCompare(c.Request.Context(), nil, typeSlug, itemsCSV)
	if err != nil {
		respondHTML(c, render.ErrorFragment(h.inlineMessage(err, msgCompareMissing)))
		return
	}

	markup, err := h.renderer.Compare(render.BuildCompareData(view))
	if err != nil {
		h.log.Error("compare render failed", "type", typeSlug, "items", itemsCSV, "error", err)
		respondHTML(c, render.ErrorFragment(msgRenderFailed))
		return
	}
	respondHTML(c, markup)
}

// Single renders the one-item view fragment.
func (h *ComparatorHandler) Single(c *gin.Context) {
	typeSlug := c.Query("type")
	itemSlug := c.Query("item")
	if typeSlug == "" || itemSlug == "" {
		respondHTML(c, render.ErrorFragment(msgSingleMissing))
		return
	}

	view, err := h.resolve.ResolveSingle(c.Request.Context(), nil, typeSlug, itemSlug)
	if err != nil {
		msg := h.inlineMessage(err, msgSingleMissing)
		if msg == msgItemsNotFound {
			msg = msgItemNotFound
		}
		respondHTML(c, render.ErrorFragment(msg))
		return
	}

	markup, err := h.renderer.Single(render.BuildSingleData(view))
	if err != nil {
		h.log.Error("single render failed", "type", typeSlug, "item", itemSlug, "error", err)
		respondHTML(c, render.ErrorFragment(msgRenderFailed))
		return
	}
	respondHTML(c, markup)
}

func (h *ComparatorHandler) inlineMessage(err error, missingMsg string) string {
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		h.log.Error("resolution failed", "error", err)
		return msgRenderFailed
	}
	switch ae.Code {
	case apierr.CodeMissingParams:
		return missingMsg
	case apierr.CodeTypeNotFound:
		return msgTypeNotFound
	case apierr.CodeItemsNotFound:
		return msgItemsNotFound
	case apierr.CodeExactlyTwoItems:
		return msgExactlyTwo
	default:
		h.log.Error("resolution failed", "code", ae.Code, "error", ae)
		return msgRenderFailed
	}
}
