package seo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/assurcompare/comparator-backend/internal/logger"
	"github.com/assurcompare/comparator-backend/internal/repos"
	"github.com/assurcompare/comparator-backend/internal/types"
)

// Writer persists and reads back SEO title/description in the convention
// of one plugin family. Implementations are selected once at startup; call
// sites treat every write as best-effort.
type Writer interface {
	WriteMetadata(ctx context.Context, tx *gorm.DB, pageID uuid.UUID, title, description string) error
	// ReadMetadata returns what the family previously persisted for the
	// page; empty strings when nothing was stored.
	ReadMetadata(ctx context.Context, tx *gorm.DB, pageID uuid.UUID) (title, description string, err error)
}

// NewWriter picks the implementation for the configured plugin family.
// family "" or "none" disables SEO writes. AIOSEO branches on its major
// version: v4 and later merge a structured settings blob, earlier versions
// write two independent keys.
func NewWriter(family string, aioseoMajor int, metaRepo repos.PageMetaRepo, baseLog *logger.Logger) (Writer, error) {
	log := baseLog.With("service", "SEOWriter")
	family = strings.ToLower(strings.TrimSpace(family))
	if family == "" || family == "none" {
		log.Info("No SEO plugin configured, metadata writes disabled")
		return noopWriter{}, nil
	}

	reg, err := loadRegistry()
	if err != nil {
		return nil, err
	}

	if family == "aioseo" && aioseoMajor >= 4 {
		log.Info("SEO writer selected", "family", family, "format", "settings_blob", "major", aioseoMajor)
		return &settingsBlobWriter{
			log:      log,
			metaRepo: metaRepo,
			blob:     reg.AIOSEO4,
		}, nil
	}

	keys, ok := reg.Plugins[family]
	if !ok {
		return nil, fmt.Errorf("unknown seo plugin family %q", family)
	}
	log.Info("SEO writer selected", "family", family, "format", "key_pair")
	return &keyPairWriter{
		log:      log,
		metaRepo: metaRepo,
		keys:     keys,
	}, nil
}

type noopWriter struct{}

func (noopWriter) WriteMetadata(ctx context.Context, tx *gorm.DB, pageID uuid.UUID, title, description string) error {
	return nil
}

func (noopWriter) ReadMetadata(ctx context.Context, tx *gorm.DB, pageID uuid.UUID) (string, string, error) {
	return "", "", nil
}

// keyPairWriter stores title and description as two independent meta rows
// (Yoast, RankMath, AIOSEO before v4).
type keyPairWriter struct {
	log      *logger.Logger
	metaRepo repos.PageMetaRepo
	keys     KeyPair
}

func (w *keyPairWriter) WriteMetadata(ctx context.Context, tx *gorm.DB, pageID uuid.UUID, title, description string) error {
	if title != "" {
		if err := w.upsertString(ctx, tx, pageID, w.keys.TitleKey, title); err != nil {
			return fmt.Errorf("write seo title: %w", err)
		}
	}
	if description != "" {
		if err := w.upsertString(ctx, tx, pageID, w.keys.DescriptionKey, description); err != nil {
			return fmt.Errorf("write seo description: %w", err)
		}
	}
	return nil
}

func (w *keyPairWriter) ReadMetadata(ctx context.Context, tx *gorm.DB, pageID uuid.UUID) (string, string, error) {
	title, err := w.readString(ctx, tx, pageID, w.keys.TitleKey)
	if err != nil {
		return "", "", fmt.Errorf("read seo title: %w", err)
	}
	description, err := w.readString(ctx, tx, pageID, w.keys.DescriptionKey)
	if err != nil {
		return "", "", fmt.Errorf("read seo description: %w", err)
	}
	return title, description, nil
}

func (w *keyPairWriter) readString(ctx context.Context, tx *gorm.DB, pageID uuid.UUID, key string) (string, error) {
	meta, err := w.metaRepo.Get(ctx, tx, pageID, key)
	if err != nil || meta == nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(meta.MetaValue, &s); err != nil {
		w.log.Warn("stored seo meta unreadable, ignoring", "page_id", pageID, "meta_key", key, "error", err)
		return "", nil
	}
	return s, nil
}

func (w *keyPairWriter) upsertString(ctx context.Context, tx *gorm.DB, pageID uuid.UUID, key, val string) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return w.metaRepo.Upsert(ctx, tx, &types.ComparisonPageMeta{
		PageID:    pageID,
		MetaKey:   key,
		MetaValue: datatypes.JSON(raw),
	})
}

// settingsBlobWriter merges title/description into the single structured
// settings value AIOSEO v4 owns, preserving any pre-existing entries.
type settingsBlobWriter struct {
	log      *logger.Logger
	metaRepo repos.PageMetaRepo
	blob     SettingsBlob
}

func (w *settingsBlobWriter) ReadMetadata(ctx context.Context, tx *gorm.DB, pageID uuid.UUID) (string, string, error) {
	existing, err := w.metaRepo.Get(ctx, tx, pageID, w.blob.SettingsKey)
	if err != nil {
		return "", "", fmt.Errorf("load seo settings: %w", err)
	}
	if existing == nil || len(existing.MetaValue) == 0 {
		return "", "", nil
	}
	settings := map[string]any{}
	if err := json.Unmarshal(existing.MetaValue, &settings); err != nil {
		w.log.Warn("stored seo settings blob unreadable, ignoring", "page_id", pageID, "error", err)
		return "", "", nil
	}
	title, _ := settings[w.blob.TitleField].(string)
	description, _ := settings[w.blob.DescriptionField].(string)
	return title, description, nil
}

func (w *settingsBlobWriter) WriteMetadata(ctx context.Context, tx *gorm.DB, pageID uuid.UUID, title, description string) error {
	if title == "" && description == "" {
		return nil
	}

	settings := map[string]any{}
	existing, err := w.metaRepo.Get(ctx, tx, pageID, w.blob.SettingsKey)
	if err != nil {
		return fmt.Errorf("load seo settings: %w", err)
	}
	if existing != nil && len(existing.MetaValue) > 0 {
		if err := json.Unmarshal(existing.MetaValue, &settings); err != nil {
			w.log.Warn("existing seo settings blob unreadable, rebuilding", "page_id", pageID, "error", err)
			settings = map[string]any{}
		}
	}

	if title != "" {
		settings[w.blob.TitleField] = title
	}
	if description != "" {
		settings[w.blob.DescriptionField] = description
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return w.metaRepo.Upsert(ctx, tx, &types.ComparisonPageMeta{
		PageID:    pageID,
		MetaKey:   w.blob.SettingsKey,
		MetaValue: datatypes.JSON(raw),
	})
}
