package models

import (
	"time"

	"crest/internal/shared/constants"
)

// Content tables addressable by moderation content actions. The workflow
// only needs identity and ownership; the content payloads themselves are
// managed by the platform's gallery services.

type ProfileModel struct {
	ID     uint `gorm:"primarykey"`
	UserID uint `gorm:"not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProfileModel) TableName() string { return constants.TableProfiles }

type ProfilePairModel struct {
	ID     uint `gorm:"primarykey"`
	UserID uint `gorm:"not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProfilePairModel) TableName() string { return constants.TableProfilePairs }

type EmoteModel struct {
	ID     uint `gorm:"primarykey"`
	UserID uint `gorm:"not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EmoteModel) TableName() string { return constants.TableEmotes }

type WallpaperModel struct {
	ID     uint `gorm:"primarykey"`
	UserID uint `gorm:"not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (WallpaperModel) TableName() string { return constants.TableWallpapers }

type EmojiComboModel struct {
	ID     uint `gorm:"primarykey"`
	UserID uint `gorm:"not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EmojiComboModel) TableName() string { return constants.TableEmojiCombos }
