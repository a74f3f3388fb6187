package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"crest/internal/domain/content"
	"crest/internal/shared/db"
)

// ContentRepositoryImpl addresses the closed set of content tables by
// name. Table names always come from the domain's content-type mapping,
// never from user input.
type ContentRepositoryImpl struct {
	db *gorm.DB
}

func NewContentRepository(gormDB *gorm.DB) content.Repository {
	return &ContentRepositoryImpl{db: gormDB}
}

func (r *ContentRepositoryImpl) OwnerID(ctx context.Context, table string, contentID uint) (uint, error) {
	// Scan leaves ownerID zero when the row is absent, which matches the
	// "no recorded owner" contract.
	var ownerID uint

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Table(table).
		Select("user_id").
		Where("id = ?", contentID).
		Scan(&ownerID).Error
	if err != nil {
		return 0, fmt.Errorf("failed to look up content owner: %w", err)
	}
	return ownerID, nil
}

func (r *ContentRepositoryImpl) DeleteByID(ctx context.Context, table string, contentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), contentID).Error; err != nil {
		return fmt.Errorf("failed to delete content row: %w", err)
	}
	return nil
}
