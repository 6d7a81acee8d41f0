// Package repo – chat transcript repository.
//
// Transcripts are append-only: rows are inserted and never updated or
// deleted. A user turn and the bot turn answering it are written as two
// separate inserts; ordering is by creation time with the autoincrement id
// as tie-breaker, so retrieving a transcript twice without new writes always
// yields the same sequence.
//
// Functions:
//
//   - AppendChatMessage(ctx, db, ownerID, role, content, ts) -> *domain.ChatMessage, error
//     Appends one transcript row at the given timestamp.
//
//   - AppendChatTurn(ctx, db, ownerID, userMsg, botMsg) -> error
//     Appends a user message and its bot reply atomically, sharing a derived
//     timestamp ordering (bot row one microsecond after the user row).
//
//   - ListChatMessages(ctx, db, ownerID) -> []domain.ChatMessage, error
//     Returns the full transcript for an owner in stable order.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/domain"
)

// AppendChatMessage inserts one transcript row for ownerID.
func AppendChatMessage(ctx context.Context, db *gorm.DB, ownerID, role, content string, ts time.Time) (*domain.ChatMessage, error) {
	m := &domain.ChatMessage{
		OwnerID:   ownerID,
		Role:      role,
		Content:   content,
		CreatedAt: ts,
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// AppendChatTurn persists a user message and the bot reply in one
// transaction. The bot row is stamped one microsecond after the user row so
// the pair keeps its order even when both land in the same clock tick.
func AppendChatTurn(ctx context.Context, db *gorm.DB, ownerID, userMsg, botMsg string) error {
	now := time.Now().UTC()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := AppendChatMessage(ctx, tx, ownerID, domain.RoleUser, userMsg, now); err != nil {
			return err
		}
		_, err := AppendChatMessage(ctx, tx, ownerID, domain.RoleBot, botMsg, now.Add(time.Microsecond))
		return err
	})
}

// ListChatMessages returns the transcript for ownerID ordered by creation
// time ascending, id breaking ties.
func ListChatMessages(ctx context.Context, db *gorm.DB, ownerID string) ([]domain.ChatMessage, error) {
	var out []domain.ChatMessage
	err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at asc, id asc").
		Find(&out).Error
	return out, err
}
