package blogService

import (
	"context"
	"mime/multipart"

	blogs "inkwell/internal/api/blog"
	blogRepository "inkwell/internal/api/blog/repository"
	"inkwell/internal/entity"
	"inkwell/pkg/s3"
	"inkwell/pkg/utils"

	"github.com/sirupsen/logrus"
)

type BlogService interface {
	Blog() BlogDomain
}

type BlogDomain interface {
	Create(c context.Context, authorID string, req blogs.CreateBlogRequest) (blogs.BlogResponse, error)
	GetBySlug(c context.Context, slug string, viewer entity.UserLoginData) (blogs.BlogResponse, error)
	GetForEdit(c context.Context, id string, viewer entity.UserLoginData) (blogs.BlogResponse, error)
	List(c context.Context, filter blogs.ListFilter, viewerID string, page, limit int) (blogs.BlogListResponse, error)
	ListMine(c context.Context, viewer entity.UserLoginData, status string, page, limit int) (blogs.BlogListResponse, error)
	Update(c context.Context, id string, viewer entity.UserLoginData, req blogs.UpdateBlogRequest) (blogs.BlogResponse, error)
	Delete(c context.Context, id string, viewer entity.UserLoginData) error
	ToggleLike(c context.Context, blogID, userID string) (blogs.LikeResponse, error)
	UploadImage(c context.Context, file *multipart.FileHeader) (blogs.UploadResponse, error)
}

type blogService struct {
	log            *logrus.Logger
	blogRepository blogRepository.Repository
	s3Client       s3.ItfS3
	utils          utils.IUtils

	blogDomain BlogDomain
}

func (b *blogService) Blog() BlogDomain {
	return b.blogDomain
}

type blogDomainImpl struct {
	log      *logrus.Logger
	repo     blogRepository.Repository
	s3Client s3.ItfS3
	utils    utils.IUtils
}

func New(log *logrus.Logger,
	blogRepo blogRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) BlogService {
	return &blogService{
		log:            log,
		blogRepository: blogRepo,
		s3Client:       s3Client,
		utils:          utils,

		blogDomain: &blogDomainImpl{log: log, repo: blogRepo, s3Client: s3Client, utils: utils},
	}
}
