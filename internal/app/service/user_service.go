package service

import (
	"errors"

	"github.com/tim-rayner/restaurant-review-api/internal/app/model"
	"github.com/tim-rayner/restaurant-review-api/internal/app/repository"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username is already taken")
)

// UpdateUserInput carries the updatable profile fields. Nil fields are left
// unchanged; the username itself is immutable.
type UpdateUserInput struct {
	City                *string `json:"city"`
	County              *string `json:"county"`
	PostCode            *string `json:"post_code"`
	ActivePeanutAllergy *bool   `json:"active_peanut_allergy"`
	ActiveEggAllergy    *bool   `json:"active_egg_allergy"`
	ActiveDairyAllergy  *bool   `json:"active_dairy_allergy"`
}

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser registers a user with a unique username
func (s *UserService) CreateUser(user *model.User) error {
	exists, err := s.userRepo.ExistsByUsername(user.Username)
	if err != nil {
		return err
	}
	if exists {
		return ErrUsernameTaken
	}

	user.ID = 0
	return s.userRepo.Create(user)
}

// GetUserByUsername fetches a user profile by display name
func (s *UserService) GetUserByUsername(username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser applies a partial profile update
func (s *UserService) UpdateUser(username string, input UpdateUserInput) (*model.User, error) {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}

	if input.City != nil {
		user.City = *input.City
	}
	if input.County != nil {
		user.County = *input.County
	}
	if input.PostCode != nil {
		user.PostCode = *input.PostCode
	}
	if input.ActivePeanutAllergy != nil {
		user.ActivePeanutAllergy = *input.ActivePeanutAllergy
	}
	if input.ActiveEggAllergy != nil {
		user.ActiveEggAllergy = *input.ActiveEggAllergy
	}
	if input.ActiveDairyAllergy != nil {
		user.ActiveDairyAllergy = *input.ActiveDairyAllergy
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
