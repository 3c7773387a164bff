package adminService

import (
	"context"

	"inkwell/internal/api/admin"
	contextPkg "inkwell/pkg/context"
	"inkwell/pkg/log"
	"inkwell/pkg/response"
)

const recentActivityLimit = 5

// Dashboard answers only when the database is reachable.
func (s *statsDomainImpl) Dashboard(c context.Context) (admin.DashboardResponse, error) {
	if err := s.repo.Ping(c); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(c),
		}).Error("database unreachable: ", err)
		return admin.DashboardResponse{}, admin.ErrDatabaseNotReady
	}

	client, err := s.repo.NewClient(false)
	if err != nil {
		return admin.DashboardResponse{}, err
	}

	counts, err := client.Stats.Counts(c)
	if err != nil {
		return admin.DashboardResponse{}, err
	}

	recentUsers, err := client.Stats.RecentUsers(c, recentActivityLimit)
	if err != nil {
		return admin.DashboardResponse{}, err
	}

	recentBlogs, err := client.Stats.RecentBlogs(c, recentActivityLimit)
	if err != nil {
		return admin.DashboardResponse{}, err
	}

	users := make([]admin.RecentUser, 0, len(recentUsers))
	for _, u := range recentUsers {
		users = append(users, admin.RecentUser{
			ID:        u.ID,
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Avatar:    u.AvatarURL,
			CreatedAt: u.CreatedAt,
		})
	}

	blogsList := make([]admin.RecentBlog, 0, len(recentBlogs))
	for _, b := range recentBlogs {
		blogsList = append(blogsList, admin.RecentBlog{
			ID:     b.ID,
			Title:  b.Title,
			Slug:   b.Slug,
			Status: b.Status,
			Author: admin.AuthorResponse{
				Username:  b.AuthorUsername,
				FirstName: b.AuthorFirstName,
				LastName:  b.AuthorLastName,
			},
			CreatedAt: b.CreatedAt,
		})
	}

	return admin.DashboardResponse{
		Stats: counts,
		RecentActivity: admin.RecentActivity{
			Users: users,
			Blogs: blogsList,
		},
	}, nil
}

// DetailedStats pages through one resource type at a time. Unknown types
// never reach the database.
func (s *statsDomainImpl) DetailedStats(c context.Context, statsType string, page, limit int) (admin.DetailedStatsResponse, error) {
	parsed, err := admin.ParseStatsType(statsType)
	if err != nil {
		return admin.DetailedStatsResponse{}, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	client, err := s.repo.NewClient(false)
	if err != nil {
		return admin.DetailedStatsResponse{}, err
	}

	var items interface{}
	var total int

	switch parsed {
	case admin.StatsUsers:
		list, n, err := client.Users.List(c, admin.UserFilter{}, limit, offset)
		if err != nil {
			return admin.DetailedStatsResponse{}, err
		}
		users := make([]admin.UserResponse, 0, len(list))
		for _, u := range list {
			users = append(users, admin.MakeUserResponse(u))
		}
		items, total = users, n

	case admin.StatsBlogs, admin.StatsPublishedBlogs:
		filter := admin.BlogFilter{}
		if parsed == admin.StatsPublishedBlogs {
			filter.Status = "published"
		}
		list, n, err := client.Blogs.List(c, filter, limit, offset)
		if err != nil {
			return admin.DetailedStatsResponse{}, err
		}
		blogsList := make([]admin.BlogResponse, 0, len(list))
		for _, b := range list {
			blogsList = append(blogsList, admin.MakeBlogResponse(b))
		}
		items, total = blogsList, n

	case admin.StatsComments:
		list, n, err := client.Stats.ListComments(c, limit, offset)
		if err != nil {
			return admin.DetailedStatsResponse{}, err
		}
		commentsList := make([]admin.CommentResponse, 0, len(list))
		for _, cm := range list {
			commentsList = append(commentsList, admin.MakeCommentResponse(cm))
		}
		items, total = commentsList, n
	}

	return admin.DetailedStatsResponse{
		Items:      items,
		Pagination: response.NewPagination(page, limit, total),
		Type:       parsed,
	}, nil
}
