package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/platform/apierr"
	"github.com/assurcompare/comparator-backend/internal/repos"
	"github.com/assurcompare/comparator-backend/internal/seo"
	"github.com/assurcompare/comparator-backend/internal/types"
	"github.com/assurcompare/comparator-backend/internal/utils"
)

const defaultPageTitleTemplate = "Prévoyance : Comparaison du contrat {name1} et {name2}"

// ComparisonPageSlug derives the deterministic permalink slug for a
// comparison triple. Inputs are normalized first, so any casing or
// whitespace variant of the same triple lands on the same page.
func ComparisonPageSlug(typeSlug, item1Slug, item2Slug string) string {
	return fmt.Sprintf("comparez-%s-%s-et-%s",
		utils.NormalizeSlug(typeSlug),
		utils.NormalizeSlug(item1Slug),
		utils.NormalizeSlug(item2Slug))
}

// PageResult reports the outcome of get-or-create. Existing=true means the
// call performed zero writes.
type PageResult struct {
	PageID   uuid.UUID `json:"page_id"`
	Slug     string    `json:"slug"`
	Existing bool      `json:"existing"`
}

// PageView pairs a materialized page row with the SEO metadata its plugin
// family persisted for it. Empty meta means nothing was stored.
type PageView struct {
	Page            *types.ComparisonPage
	MetaTitle       string
	MetaDescription string
}

type PageService interface {
	GetOrCreatePage(ctx context.Context, typeSlug, item1Slug, item2Slug string) (*PageResult, error)
	GetPageBySlug(ctx context.Context, slug string) (*types.ComparisonPage, error)
	GetPageView(ctx context.Context, slug string) (*PageView, error)
}

type pageService struct {
	db        *gorm.DB
	log       *logger.Logger
	typeRepo  repos.TypeRepo
	itemRepo  repos.ItemRepo
	pageRepo  repos.PageRepo
	metaRepo  repos.PageMetaRepo
	seoWriter seo.Writer
}

func NewPageService(
	db *gorm.DB,
	baseLog *logger.Logger,
	typeRepo repos.TypeRepo,
	itemRepo repos.ItemRepo,
	pageRepo repos.PageRepo,
	metaRepo repos.PageMetaRepo,
	seoWriter seo.Writer,
) PageService {
	serviceLog := baseLog.With("service", "PageService")
	return &pageService{
		db:        db,
		log:       serviceLog,
		typeRepo:  typeRepo,
		itemRepo:  itemRepo,
		pageRepo:  pageRepo,
		metaRepo:  metaRepo,
		seoWriter: seoWriter,
	}
}

func (ps *pageService) GetPageBySlug(ctx context.Context, slug string) (*types.ComparisonPage, error) {
	return ps.pageRepo.GetBySlug(ctx, nil, slug)
}

// GetPageView returns (nil, nil) when no page carries the slug. A failed
// meta read degrades to empty meta, never to a failed view.
func (ps *pageService) GetPageView(ctx context.Context, slug string) (*PageView, error) {
	page, err := ps.pageRepo.GetBySlug(ctx, nil, slug)
	if err != nil {
		return nil, fmt.Errorf("lookup page %q: %w", slug, err)
	}
	if page == nil {
		return nil, nil
	}
	metaTitle, metaDescription, err := ps.seoWriter.ReadMetadata(ctx, nil, page.ID)
	if err != nil {
		ps.log.Warn("seo metadata read failed", "slug", slug, "error", err)
		metaTitle, metaDescription = "", ""
	}
	return &PageView{Page: page, MetaTitle: metaTitle, MetaDescription: metaDescription}, nil
}

func (ps *pageService) GetOrCreatePage(ctx context.Context, typeSlug, item1Slug, item2Slug string) (*PageResult, error) {
	typeSlug = utils.NormalizeSlug(typeSlug)
	item1Slug = utils.NormalizeSlug(item1Slug)
	item2Slug = utils.NormalizeSlug(item2Slug)
	if typeSlug == "" || item1Slug == "" || item2Slug == "" {
		return nil, apierr.New(http.StatusBadRequest, apierr.CodeMissingParams, fmt.Errorf("type and both item slugs required"))
	}

	pageSlug := ComparisonPageSlug(typeSlug, item1Slug, item2Slug)

	// Fast path: the page already exists, nothing is written.
	existing, err := ps.pageRepo.GetBySlug(ctx, nil, pageSlug)
	if err != nil {
		return nil, fmt.Errorf("lookup page %q: %w", pageSlug, err)
	}
	if existing != nil {
		return &PageResult{PageID: existing.ID, Slug: existing.Slug, Existing: true}, nil
	}

	cmpType, err := ps.typeRepo.GetBySlug(ctx, nil, typeSlug)
	if err != nil {
		return nil, fmt.Errorf("load type %q: %w", typeSlug, err)
	}
	if cmpType == nil {
		return nil, apierr.New(http.StatusNotFound, apierr.CodeTypeNotFound, fmt.Errorf("comparator type %q not found", typeSlug))
	}

	item1, err := ps.itemRepo.GetActiveBySlug(ctx, nil, cmpType.ID, item1Slug)
	if err != nil {
		return nil, fmt.Errorf("load item %q: %w", item1Slug, err)
	}
	item2, err := ps.itemRepo.GetActiveBySlug(ctx, nil, cmpType.ID, item2Slug)
	if err != nil {
		return nil, fmt.Errorf("load item %q: %w", item2Slug, err)
	}
	if item1 == nil || item2 == nil {
		return nil, apierr.New(http.StatusNotFound, apierr.CodeItemsNotFound, fmt.Errorf("one or more items not found for type %q", typeSlug))
	}

	title := ps.pageTitle(cmpType, item1, item2)
	content := fmt.Sprintf("[comparator_compare type=%q items=%q]", cmpType.Slug, item1.Slug+","+item2.Slug)

	metaTitle := ""
	if cmpType.MetaTitle != "" {
		metaTitle = SubstitutePlaceholders(cmpType.MetaTitle, item1, item2)
	}
	metaDescription := ""
	if cmpType.MetaDescription != "" {
		metaDescription = SubstitutePlaceholders(cmpType.MetaDescription, item1, item2)
	}

	page := &types.ComparisonPage{
		ID:        uuid.New(),
		Slug:      pageSlug,
		Title:     title,
		Content:   content,
		TypeSlug:  typeSlug,
		Item1Slug: item1Slug,
		Item2Slug: item2Slug,
	}

	existedBeforeCreate := false
	err = ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Re-check inside the transaction: a concurrent first visit may
		// have won the race against the unique slug index.
		raced, err := ps.pageRepo.GetBySlug(ctx, tx, pageSlug)
		if err != nil {
			return err
		}
		if raced != nil {
			page = raced
			existedBeforeCreate = true
			return nil
		}
		if _, err := ps.pageRepo.Create(ctx, tx, page); err != nil {
			return err
		}
		return ps.metaRepo.CreateBatch(ctx, tx, markerMetas(page))
	})
	if err != nil {
		ps.log.Error("page creation failed", "slug", pageSlug, "error", err)
		return nil, apierr.New(http.StatusInternalServerError, apierr.CodeCreateFailed, fmt.Errorf("create page %q: %w", pageSlug, err))
	}
	if existedBeforeCreate {
		return &PageResult{PageID: page.ID, Slug: page.Slug, Existing: true}, nil
	}

	// SEO metadata is an enhancement; a failed write never rolls back the
	// page.
	if metaTitle != "" || metaDescription != "" {
		if err := ps.seoWriter.WriteMetadata(ctx, nil, page.ID, metaTitle, metaDescription); err != nil {
			ps.log.Warn("seo metadata write failed", "slug", pageSlug, "error", err)
		}
	}

	ps.log.Info("comparison page created", "slug", pageSlug, "page_id", page.ID)
	return &PageResult{PageID: page.ID, Slug: page.Slug, Existing: false}, nil
}

func (ps *pageService) pageTitle(cmpType *types.ComparatorType, item1, item2 *types.ComparatorItem) string {
	if cmpType.CustomTitle != "" {
		return SubstitutePlaceholders(cmpType.CustomTitle, item1, item2)
	}
	return SubstitutePlaceholders(defaultPageTitleTemplate, item1, item2)
}

func markerMetas(page *types.ComparisonPage) []*types.ComparisonPageMeta {
	mustJSON := func(v any) datatypes.JSON {
		raw, _ := json.Marshal(v)
		return datatypes.JSON(raw)
	}
	return []*types.ComparisonPageMeta{
		{ID: uuid.New(), PageID: page.ID, MetaKey: types.MetaKeyComparatorPage, MetaValue: mustJSON(true)},
		{ID: uuid.New(), PageID: page.ID, MetaKey: types.MetaKeyComparatorType, MetaValue: mustJSON(page.TypeSlug)},
		{ID: uuid.New(), PageID: page.ID, MetaKey: types.MetaKeyComparatorItem1, MetaValue: mustJSON(page.Item1Slug)},
		{ID: uuid.New(), PageID: page.ID, MetaKey: types.MetaKeyComparatorItem2, MetaValue: mustJSON(page.Item2Slug)},
	}
}
