package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Alisacalm/Yatube/internal/model"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Create is idempotent: the composite unique index on (user_id, author_id)
// backs FirstOrCreate, so a repeated follow never duplicates the pair.
func (r *FollowRepository) Create(userID, authorID uint) error {
	follow := model.Follow{UserID: userID, AuthorID: authorID}
	err := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).
		FirstOrCreate(&follow).Error
	if err != nil {
		return fmt.Errorf("create follow failed: %w", err)
	}
	return nil
}

func (r *FollowRepository) Delete(userID, authorID uint) error {
	err := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&model.Follow{}).Error
	if err != nil {
		return fmt.Errorf("delete follow failed: %w", err)
	}
	return nil
}

func (r *FollowRepository) Exists(userID, authorID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check follow failed: %w", err)
	}
	return count > 0, nil
}

func (r *FollowRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Follow{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count follows failed: %w", err)
	}
	return count, nil
}
