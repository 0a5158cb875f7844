package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/types"
)

type PageRepo interface {
	GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.ComparisonPage, error)
	Create(ctx context.Context, tx *gorm.DB, page *types.ComparisonPage) (*types.ComparisonPage, error)
}

type pageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPageRepo(db *gorm.DB, baseLog *logger.Logger) PageRepo {
	repoLog := baseLog.With("repo", "PageRepo")
	return &pageRepo{db: db, log: repoLog}
}

func (pr *pageRepo) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.ComparisonPage, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result types.ComparisonPage
	if err := transaction.WithContext(ctx).
		Where("slug = ?", slug).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (pr *pageRepo) Create(ctx context.Context, tx *gorm.DB, page *types.ComparisonPage) (*types.ComparisonPage, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if err := transaction.WithContext(ctx).Create(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

type PageMetaRepo interface {
	Get(ctx context.Context, tx *gorm.DB, pageID uuid.UUID, metaKey string) (*types.ComparisonPageMeta, error)
	Upsert(ctx context.Context, tx *gorm.DB, meta *types.ComparisonPageMeta) error
	CreateBatch(ctx context.Context, tx *gorm.DB, metas []*types.ComparisonPageMeta) error
	ListByPage(ctx context.Context, tx *gorm.DB, pageID uuid.UUID) ([]*types.ComparisonPageMeta, error)
}

type pageMetaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPageMetaRepo(db *gorm.DB, baseLog *logger.Logger) PageMetaRepo {
	repoLog := baseLog.With("repo", "PageMetaRepo")
	return &pageMetaRepo{db: db, log: repoLog}
}

func (pm *pageMetaRepo) Get(ctx context.Context, tx *gorm.DB, pageID uuid.UUID, metaKey string) (*types.ComparisonPageMeta, error) {
	transaction := tx
	if transaction == nil {
		transaction = pm.db
	}

	var result types.ComparisonPageMeta
	if err := transaction.WithContext(ctx).
		Where("page_id = ? AND meta_key = ?", pageID, metaKey).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (pm *pageMetaRepo) Upsert(ctx context.Context, tx *gorm.DB, meta *types.ComparisonPageMeta) error {
	transaction := tx
	if transaction == nil {
		transaction = pm.db
	}

	existing, err := pm.Get(ctx, transaction, meta.PageID, meta.MetaKey)
	if err != nil {
		return err
	}
	if existing != nil {
		return transaction.WithContext(ctx).
			Model(existing).
			Update("meta_value", meta.MetaValue).Error
	}
	if meta.ID == uuid.Nil {
		meta.ID = uuid.New()
	}
	return transaction.WithContext(ctx).Create(meta).Error
}

func (pm *pageMetaRepo) CreateBatch(ctx context.Context, tx *gorm.DB, metas []*types.ComparisonPageMeta) error {
	transaction := tx
	if transaction == nil {
		transaction = pm.db
	}

	if len(metas) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).Create(&metas).Error
}

func (pm *pageMetaRepo) ListByPage(ctx context.Context, tx *gorm.DB, pageID uuid.UUID) ([]*types.ComparisonPageMeta, error) {
	transaction := tx
	if transaction == nil {
		transaction = pm.db
	}

	var results []*types.ComparisonPageMeta
	if err := transaction.WithContext(ctx).
		Where("page_id = ?", pageID).
		Order("meta_key").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
