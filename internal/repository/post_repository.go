package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/a-epstein/microblog/internal/model"
)

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

func (r *PostRepository) ListByAuthor(authorID uint, limit int) ([]model.Post, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var posts []model.Post
	err := r.db.Where("user_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts by author failed: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).
		Where("user_id = ?", authorID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count posts by author failed: %w", err)
	}
	return count, nil
}
