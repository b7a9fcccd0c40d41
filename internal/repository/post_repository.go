package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Alisacalm/Yatube/internal/model"
)

// PostFilter narrows a post listing. Zero-value fields are ignored, so the
// empty filter means "the whole feed".
type PostFilter struct {
	GroupID    uint
	AuthorID   uint
	FollowedBy uint   // posts authored by users this user follows
	Search     string // substring match over text, admin listing only
}

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("create post failed: %w", err)
	}
	return nil
}

// Update rewrites the editable columns only, leaving author and pub_date
// untouched.
func (r *PostRepository) Update(post *model.Post) error {
	columns := map[string]interface{}{
		"text":     post.Text,
		"group_id": post.GroupID,
		"image":    post.Image,
	}
	if err := r.db.Model(&model.Post{}).Where("id = ?", post.ID).Updates(columns).Error; err != nil {
		return fmt.Errorf("update post failed: %w", err)
	}
	return nil
}

func (r *PostRepository) GetByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.Preload("Author").Preload("Group").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by id failed: %w", err)
	}
	return &post, nil
}

// List returns one page of posts, newest first.
func (r *PostRepository) List(filter PostFilter, offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	query := r.filtered(filter).
		Preload("Author").
		Preload("Group").
		Order("pub_date DESC, id DESC").
		Offset(offset).
		Limit(limit)
	if err := query.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts failed: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) Count(filter PostFilter) (int64, error) {
	var count int64
	if err := r.filtered(filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count posts failed: %w", err)
	}
	return count, nil
}

// Delete removes a post together with its comments.
func (r *PostRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete post failed: %w", err)
	}
	return nil
}

func (r *PostRepository) filtered(filter PostFilter) *gorm.DB {
	query := r.db.Model(&model.Post{})
	if filter.GroupID != 0 {
		query = query.Where("group_id = ?", filter.GroupID)
	}
	if filter.AuthorID != 0 {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.FollowedBy != 0 {
		followed := r.db.Model(&model.Follow{}).
			Select("author_id").
			Where("user_id = ?", filter.FollowedBy)
		query = query.Where("author_id IN (?)", followed)
	}
	if filter.Search != "" {
		query = query.Where("text LIKE ?", "%"+filter.Search+"%")
	}
	return query
}
