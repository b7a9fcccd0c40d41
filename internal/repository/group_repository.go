package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Alisacalm/Yatube/internal/model"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Create(group *model.Group) error {
	if err := r.db.Create(group).Error; err != nil {
		return fmt.Errorf("create group failed: %w", err)
	}
	return nil
}

func (r *GroupRepository) GetBySlug(slug string) (*model.Group, error) {
	var group model.Group
	if err := r.db.Where("slug = ?", slug).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query group by slug failed: %w", err)
	}
	return &group, nil
}

func (r *GroupRepository) GetByID(id uint) (*model.Group, error) {
	var group model.Group
	if err := r.db.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query group by id failed: %w", err)
	}
	return &group, nil
}

func (r *GroupRepository) List() ([]model.Group, error) {
	var groups []model.Group
	if err := r.db.Order("title ASC").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("list groups failed: %w", err)
	}
	return groups, nil
}
