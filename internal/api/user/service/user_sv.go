package userService

import (
	"context"

	users "inkwell/internal/api/user"
	"inkwell/internal/entity"
	contextPkg "inkwell/pkg/context"
	"inkwell/pkg/log"
)

func (s *userDomainImpl) GetProfile(c context.Context, username string, viewerID string) (users.ProfileResponse, error) {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return users.ProfileResponse{}, err
	}

	user, err := client.Profiles.GetByUsername(c, username)
	if err != nil {
		return users.ProfileResponse{}, err
	}

	counts, err := client.Profiles.GetCounts(c, user.ID, viewerID)
	if err != nil {
		return users.ProfileResponse{}, err
	}

	return users.ProfileResponse{
		ID:             user.ID,
		Username:       user.Username,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Bio:            user.Bio,
		Avatar:         user.AvatarURL,
		PublishedBlogs: counts.PublishedBlogs,
		Followers:      counts.Followers,
		Following:      counts.Following,
		FollowedByMe:   counts.FollowedByMe,
		CreatedAt:      user.CreatedAt,
	}, nil
}

// ToggleFollow flips the follow edge from the viewer to the target user.
func (s *userDomainImpl) ToggleFollow(c context.Context, viewerID string, targetID string) (users.FollowResponse, error) {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return users.FollowResponse{}, err
	}

	target, err := client.Profiles.GetByID(c, targetID)
	if err != nil {
		return users.FollowResponse{}, err
	}

	if target.ID == viewerID {
		return users.FollowResponse{}, users.ErrSelfFollow
	}

	following, err := client.Follows.Exists(c, viewerID, target.ID)
	if err != nil {
		return users.FollowResponse{}, err
	}

	if following {
		err = client.Follows.Remove(c, viewerID, target.ID)
	} else {
		err = client.Follows.Add(c, viewerID, target.ID)
	}
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"target":     target.ID,
		}).Error("failed to toggle follow: ", err)
		return users.FollowResponse{}, err
	}

	count, err := client.Follows.CountFollowers(c, target.ID)
	if err != nil {
		return users.FollowResponse{}, err
	}

	return users.FollowResponse{Following: !following, Followers: count}, nil
}

func (s *userDomainImpl) Followers(c context.Context, userID string) (users.UserListResponse, error) {
	return s.listFollows(c, userID, true)
}

func (s *userDomainImpl) Following(c context.Context, userID string) (users.UserListResponse, error) {
	return s.listFollows(c, userID, false)
}

func (s *userDomainImpl) listFollows(c context.Context, userID string, followers bool) (users.UserListResponse, error) {
	client, err := s.repo.NewClient(false)
	if err != nil {
		return users.UserListResponse{}, err
	}

	user, err := client.Profiles.GetByID(c, userID)
	if err != nil {
		return users.UserListResponse{}, err
	}

	var list []entity.User
	if followers {
		list, err = client.Follows.Followers(c, user.ID)
	} else {
		list, err = client.Follows.Following(c, user.ID)
	}
	if err != nil {
		return users.UserListResponse{}, err
	}

	items := make([]users.UserSummary, 0, len(list))
	for _, u := range list {
		items = append(items, users.UserSummary{
			ID:        u.ID,
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Avatar:    u.AvatarURL,
		})
	}

	return users.UserListResponse{Users: items}, nil
}
