package userService

import (
	"context"

	users "inkwell/internal/api/user"
	userRepository "inkwell/internal/api/user/repository"

	"github.com/sirupsen/logrus"
)

type UserService interface {
	User() UserDomain
}

type UserDomain interface {
	GetProfile(c context.Context, username string, viewerID string) (users.ProfileResponse, error)
	ToggleFollow(c context.Context, viewerID string, targetID string) (users.FollowResponse, error)
	Followers(c context.Context, userID string) (users.UserListResponse, error)
	Following(c context.Context, userID string) (users.UserListResponse, error)
}

type userService struct {
	log            *logrus.Logger
	userRepository userRepository.Repository

	userDomain UserDomain
}

func (s *userService) User() UserDomain {
	return s.userDomain
}

type userDomainImpl struct {
	log  *logrus.Logger
	repo userRepository.Repository
}

func New(log *logrus.Logger, userRepo userRepository.Repository) UserService {
	return &userService{
		log:            log,
		userRepository: userRepo,

		userDomain: &userDomainImpl{log: log, repo: userRepo},
	}
}
