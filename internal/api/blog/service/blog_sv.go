package blogService

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	blogs "inkwell/internal/api/blog"
	blogRepository "inkwell/internal/api/blog/repository"
	"inkwell/internal/entity"
	contextPkg "inkwell/pkg/context"
	"inkwell/pkg/log"
	"inkwell/pkg/response"
)

func (b *blogDomainImpl) Create(c context.Context, authorID string, req blogs.CreateBlogRequest) (blogs.BlogResponse, error) {
	client, err := b.repo.NewClient(false)
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = string(entity.BlogDraft)
	}
	if !entity.ValidBlogStatus(status) {
		return blogs.BlogResponse{}, blogs.ErrInvalidBlogStatus
	}

	id, err := b.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	slug, err := b.uniqueSlug(c, client, req.Title)
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	now := time.Now()
	blog := entity.Blog{
		ID:        id,
		Title:     req.Title,
		Slug:      slug,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Category:  req.Category,
		ImageURL:  req.ImageURL,
		Status:    status,
		Author:    authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := client.Blogs.Create(c, blog); err != nil {
		b.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"author":     authorID,
		}).Error("failed to create blog: ", err)
		return blogs.BlogResponse{}, blogs.ErrCreateBlog
	}

	created, err := client.Blogs.GetByID(c, id, authorID)
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	return blogs.MakeBlogResponse(created), nil
}

// GetBySlug serves the public detail page. Drafts stay hidden from
// everyone but their author and admins.
func (b *blogDomainImpl) GetBySlug(c context.Context, slug string, viewer entity.UserLoginData) (blogs.BlogResponse, error) {
	client, err := b.repo.NewClient(false)
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	blog, err := client.Blogs.GetBySlug(c, slug, viewer.ID)
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	if blog.Status != string(entity.BlogPublished) && !canManage(blog, viewer) {
		return blogs.BlogResponse{}, blogs.ErrBlogNotFound
	}

	return blogs.MakeBlogResponse(blog), nil
}

func (b *blogDomainImpl) GetForEdit(c context.Context, id string, viewer entity.UserLoginData) (blogs.BlogResponse, error) {
	client, err := b.repo.NewClient(false)
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	blog, err := client.Blogs.GetByID(c, id, viewer.ID)
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	if !canManage(blog, viewer) {
		return blogs.BlogResponse{}, blogs.ErrBlogNotOwned
	}

	return blogs.MakeBlogResponse(blog), nil
}

// List serves the public catalogue, which only ever shows published
// posts regardless of the requested filters.
func (b *blogDomainImpl) List(c context.Context, filter blogs.ListFilter, viewerID string, page, limit int) (blogs.BlogListResponse, error) {
	filter.Status = string(entity.BlogPublished)
	return b.list(c, filter, viewerID, page, limit)
}

func (b *blogDomainImpl) ListMine(c context.Context, viewer entity.UserLoginData, status string, page, limit int) (blogs.BlogListResponse, error) {
	if status != "" && !entity.ValidBlogStatus(status) {
		return blogs.BlogListResponse{}, blogs.ErrInvalidBlogStatus
	}

	filter := blogs.ListFilter{
		Author: viewer.Username,
		Status: status,
	}

	return b.list(c, filter, viewer.ID, page, limit)
}

func (b *blogDomainImpl) list(c context.Context, filter blogs.ListFilter, viewerID string, page, limit int) (blogs.BlogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	client, err := b.repo.NewClient(false)
	if err != nil {
		return blogs.BlogListResponse{}, err
	}

	list, total, err := client.Blogs.List(c, filter, viewerID, limit, (page-1)*limit)
	if err != nil {
		return blogs.BlogListResponse{}, err
	}

	items := make([]blogs.BlogResponse, 0, len(list))
	for _, blog := range list {
		items = append(items, blogs.MakeBlogResponse(blog))
	}

	return blogs.BlogListResponse{
		Blogs:      items,
		Pagination: response.NewPagination(page, limit, total),
	}, nil
}

func (b *blogDomainImpl) Update(c context.Context, id string, viewer entity.UserLoginData, req blogs.UpdateBlogRequest) (blogs.BlogResponse, error) {
	client, err := b.repo.NewClient(false)
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	existing, err := client.Blogs.GetByID(c, id, viewer.ID)
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	if !canManage(existing, viewer) {
		return blogs.BlogResponse{}, blogs.ErrBlogNotOwned
	}

	if req.Status != "" && !entity.ValidBlogStatus(req.Status) {
		return blogs.BlogResponse{}, blogs.ErrInvalidBlogStatus
	}

	var slug string
	if req.Title != "" && req.Title != existing.Title {
		slug, err = b.uniqueSlug(c, client, req.Title)
		if err != nil {
			return blogs.BlogResponse{}, err
		}
	}

	blog := entity.Blog{
		ID:       id,
		Title:    req.Title,
		Slug:     slug,
		Content:  req.Content,
		Excerpt:  req.Excerpt,
		Category: req.Category,
		ImageURL: req.ImageURL,
		Status:   req.Status,
	}

	if err := client.Blogs.Update(c, blog); err != nil {
		b.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"blog_id":    id,
		}).Error("failed to update blog: ", err)
		return blogs.BlogResponse{}, err
	}

	updated, err := client.Blogs.GetByID(c, id, viewer.ID)
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	return blogs.MakeBlogResponse(updated), nil
}

// Delete removes the blog together with its comments and likes in a
// single transaction.
func (b *blogDomainImpl) Delete(c context.Context, id string, viewer entity.UserLoginData) error {
	readClient, err := b.repo.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := readClient.Blogs.GetByID(c, id, viewer.ID)
	if err != nil {
		return err
	}

	if !canManage(existing, viewer) {
		return blogs.ErrBlogNotOwned
	}

	client, err := b.repo.NewClient(true)
	if err != nil {
		return err
	}

	if err := client.Comments.DeleteByBlog(c, id); err != nil {
		_ = client.Rollback()
		return blogs.ErrDeleteBlog
	}

	if err := client.Blogs.Delete(c, id); err != nil {
		_ = client.Rollback()
		return blogs.ErrDeleteBlog
	}

	if err := client.Commit(); err != nil {
		b.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"blog_id":    id,
		}).Error("failed to commit blog delete: ", err)
		return blogs.ErrDeleteBlog
	}

	// Image removal is best-effort; the blog row is already gone.
	if existing.ImageURL != "" && b.s3Client != nil {
		if err := b.s3Client.DeleteFile(existing.ImageURL); err != nil {
			b.log.WithFields(log.Fields{
				"request_id": contextPkg.GetRequestID(c),
				"blog_id":    id,
			}).Warn("failed to delete blog image: ", err)
		}
	}

	return nil
}

func (b *blogDomainImpl) ToggleLike(c context.Context, blogID, userID string) (blogs.LikeResponse, error) {
	client, err := b.repo.NewClient(false)
	if err != nil {
		return blogs.LikeResponse{}, err
	}

	if _, err := client.Blogs.GetByID(c, blogID, userID); err != nil {
		return blogs.LikeResponse{}, err
	}

	liked, err := client.Likes.Exists(c, blogID, userID)
	if err != nil {
		return blogs.LikeResponse{}, err
	}

	if liked {
		err = client.Likes.Remove(c, blogID, userID)
	} else {
		err = client.Likes.Add(c, blogID, userID)
	}
	if err != nil {
		return blogs.LikeResponse{}, err
	}

	count, err := client.Likes.Count(c, blogID)
	if err != nil {
		return blogs.LikeResponse{}, err
	}

	return blogs.LikeResponse{Liked: !liked, Likes: count}, nil
}

func (b *blogDomainImpl) UploadImage(c context.Context, file *multipart.FileHeader) (blogs.UploadResponse, error) {
	if err := b.utils.ValidateImageFile(file); err != nil {
		return blogs.UploadResponse{}, err
	}

	url, err := b.s3Client.UploadFile(file)
	if err != nil {
		b.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(c),
		}).Error("failed to upload blog image: ", err)
		return blogs.UploadResponse{}, blogs.ErrFailedToUpload
	}

	return blogs.UploadResponse{URL: url}, nil
}

// uniqueSlug derives a URL slug from the title, suffixing a ULID
// fragment while the plain slug is taken.
func (b *blogDomainImpl) uniqueSlug(c context.Context, client blogRepository.Client, title string) (string, error) {
	base := b.utils.Slugify(title)

	exists, err := client.Blogs.SlugExists(c, base)
	if err != nil {
		return "", err
	}
	if !exists {
		return base, nil
	}

	id, err := b.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return "", err
	}

	return base + "-" + strings.ToLower(id[len(id)-8:]), nil
}

func canManage(blog entity.BlogWithAuthor, viewer entity.UserLoginData) bool {
	return blog.Author == viewer.ID || viewer.Role == string(entity.RoleAdmin)
}
