package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crest/internal/infrastructure/persistence/models"
	"crest/internal/shared/constants"
)

func TestContentRepository_OwnerID(t *testing.T) {
	gormDB := setupTestDB(t)
	require.NoError(t, gormDB.AutoMigrate(&models.EmoteModel{}, &models.WallpaperModel{}))
	repo := NewContentRepository(gormDB)
	ctx := context.Background()

	emote := &models.EmoteModel{UserID: 44}
	require.NoError(t, gormDB.Create(emote).Error)

	t.Run("existing row yields the owner", func(t *testing.T) {
		ownerID, err := repo.OwnerID(ctx, constants.TableEmotes, emote.ID)
		require.NoError(t, err)
		assert.Equal(t, uint(44), ownerID)
	})

	t.Run("absent row yields zero, not an error", func(t *testing.T) {
		ownerID, err := repo.OwnerID(ctx, constants.TableWallpapers, 99999)
		require.NoError(t, err)
		assert.Zero(t, ownerID)
	})
}

func TestContentRepository_DeleteByID(t *testing.T) {
	gormDB := setupTestDB(t)
	require.NoError(t, gormDB.AutoMigrate(&models.EmoteModel{}))
	repo := NewContentRepository(gormDB)
	ctx := context.Background()

	keep := &models.EmoteModel{UserID: 44}
	drop := &models.EmoteModel{UserID: 44}
	require.NoError(t, gormDB.Create(keep).Error)
	require.NoError(t, gormDB.Create(drop).Error)

	require.NoError(t, repo.DeleteByID(ctx, constants.TableEmotes, drop.ID))

	var count int64
	require.NoError(t, gormDB.Model(&models.EmoteModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "only the targeted row is removed")

	t.Run("deleting an absent row is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.DeleteByID(ctx, constants.TableEmotes, 99999))
	})
}
