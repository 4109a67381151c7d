package repository

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/a-epstein/microblog/internal/model"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Create inserts the edge if it does not already exist. The conflict clause
// rides on the composite primary key, so two concurrent follow clicks cannot
// produce a duplicate edge.
func (r *FollowRepository) Create(followerID, followedID uint) error {
	edge := model.Follow{FollowerID: followerID, FollowedID: followedID}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
	if err != nil {
		return fmt.Errorf("create follow edge failed: %w", err)
	}
	return nil
}

// Delete is a no-op when the edge does not exist.
func (r *FollowRepository) Delete(followerID, followedID uint) error {
	err := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&model.Follow{}).Error
	if err != nil {
		return fmt.Errorf("delete follow edge failed: %w", err)
	}
	return nil
}

func (r *FollowRepository) Exists(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check follow edge failed: %w", err)
	}
	return count > 0, nil
}

func (r *FollowRepository) ListFollowerIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Follow{}).
		Where("followed_id = ?", userID).
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list follower ids failed: %w", err)
	}
	return ids, nil
}

func (r *FollowRepository) ListFollowers(userID uint) ([]model.User, error) {
	var users []model.User
	err := r.db.Model(&model.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followed_id = ?", userID).
		Order("users.username ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list followers failed: %w", err)
	}
	return users, nil
}

func (r *FollowRepository) ListFollowing(userID uint) ([]model.User, error) {
	var users []model.User
	err := r.db.Model(&model.User{}).
		Joins("JOIN follows ON follows.followed_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("users.username ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list following failed: %w", err)
	}
	return users, nil
}

func (r *FollowRepository) CountFollowers(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).
		Where("followed_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count followers failed: %w", err)
	}
	return count, nil
}

func (r *FollowRepository) CountFollowing(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count following failed: %w", err)
	}
	return count, nil
}
