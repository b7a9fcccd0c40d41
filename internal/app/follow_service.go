package app

import (
	"github.com/Alisacalm/Yatube/internal/model"
	"github.com/Alisacalm/Yatube/internal/repository"
)

type FollowService struct {
	userRepo   *repository.UserRepository
	followRepo *repository.FollowRepository
}

func NewFollowService(userRepo *repository.UserRepository, followRepo *repository.FollowRepository) *FollowService {
	return &FollowService{userRepo: userRepo, followRepo: followRepo}
}

// Follow subscribes the user to the author's posts. Following yourself is a
// no-op, and following twice keeps a single row.
func (s *FollowService) Follow(userID uint, authorUsername string) error {
	author, err := s.author(userID, authorUsername)
	if err != nil {
		return err
	}
	if author.ID == userID {
		return nil
	}
	return s.followRepo.Create(userID, author.ID)
}

// Unfollow removes the subscription if it exists.
func (s *FollowService) Unfollow(userID uint, authorUsername string) error {
	author, err := s.author(userID, authorUsername)
	if err != nil {
		return err
	}
	return s.followRepo.Delete(userID, author.ID)
}

func (s *FollowService) IsFollowing(userID, authorID uint) (bool, error) {
	return s.followRepo.Exists(userID, authorID)
}

func (s *FollowService) author(userID uint, username string) (*model.User, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	author, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}
	return author, nil
}
