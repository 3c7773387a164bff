package commentService

import (
	"context"

	blogRepository "inkwell/internal/api/blog/repository"
	comments "inkwell/internal/api/comment"
	commentRepository "inkwell/internal/api/comment/repository"
	"inkwell/internal/entity"
	"inkwell/pkg/utils"

	"github.com/sirupsen/logrus"
)

type CommentService interface {
	Comment() CommentDomain
}

type CommentDomain interface {
	Create(c context.Context, author entity.UserLoginData, req comments.CreateCommentRequest) (comments.CommentResponse, error)
	ListByBlog(c context.Context, blogID string, viewerID string) (comments.CommentListResponse, error)
	Update(c context.Context, id string, viewer entity.UserLoginData, req comments.UpdateCommentRequest) (comments.CommentResponse, error)
	Delete(c context.Context, id string, viewer entity.UserLoginData) error
	ToggleLike(c context.Context, commentID, userID string) (comments.LikeResponse, error)
}

type commentService struct {
	log               *logrus.Logger
	commentRepository commentRepository.Repository
	blogRepository    blogRepository.Repository
	utils             utils.IUtils

	commentDomain CommentDomain
}

func (s *commentService) Comment() CommentDomain {
	return s.commentDomain
}

type commentDomainImpl struct {
	log      *logrus.Logger
	repo     commentRepository.Repository
	blogRepo blogRepository.Repository
	utils    utils.IUtils
}

func New(log *logrus.Logger,
	commentRepo commentRepository.Repository,
	blogRepo blogRepository.Repository,
	utils utils.IUtils,
) CommentService {
	return &commentService{
		log:               log,
		commentRepository: commentRepo,
		blogRepository:    blogRepo,
		utils:             utils,

		commentDomain: &commentDomainImpl{log: log, repo: commentRepo, blogRepo: blogRepo, utils: utils},
	}
}
