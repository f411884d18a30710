package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/MKhiriev/go-biz-admin/internal/adapter"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/validators"
	"github.com/MKhiriev/go-biz-admin/models"
)

const pathBlogs = "/api/blogs"

type blogService struct {
	api       adapter.APIClient
	validator validators.Validator

	logger *logger.Logger
}

func NewBlogService(api adapter.APIClient, logger *logger.Logger) BlogService {
	return &blogService{
		api:       api,
		validator: validators.NewAdminValidator(),
		logger:    logger,
	}
}

func (b *blogService) List(ctx context.Context, filter models.BlogFilter) ([]models.Blog, error) {
	resp, err := b.api.Get(ctx, pathBlogs, adapter.WithQuery(filter.Query()))
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return decodeContent[[]models.Blog](resp)
}

func (b *blogService) Get(ctx context.Context, id int64) (models.Blog, error) {
	path, err := idPath(pathBlogs, id)
	if err != nil {
		return models.Blog{}, err
	}

	resp, err := b.api.Get(ctx, path)
	if err != nil {
		return models.Blog{}, fmt.Errorf("get blog %d: %w", id, err)
	}
	return decodeContent[models.Blog](resp)
}

func (b *blogService) Create(ctx context.Context, blog models.Blog, files ...models.FilePart) (models.Blog, error) {
	if err := b.validator.Validate(ctx, blog); err != nil {
		return models.Blog{}, fmt.Errorf("%w: %w", ErrInvalidBlog, err)
	}
	blog.ID = 0

	resp, err := b.api.Post(ctx, pathBlogs, blogBody(blog, files))
	if err != nil {
		return models.Blog{}, fmt.Errorf("create blog: %w", err)
	}
	return decodeContent[models.Blog](resp)
}

func (b *blogService) Update(ctx context.Context, blog models.Blog, files ...models.FilePart) (models.Blog, error) {
	path, err := idPath(pathBlogs, blog.ID)
	if err != nil {
		return models.Blog{}, err
	}
	if err = b.validator.Validate(ctx, blog); err != nil {
		return models.Blog{}, fmt.Errorf("%w: %w", ErrInvalidBlog, err)
	}

	resp, err := b.api.Put(ctx, path, blogBody(blog, files))
	if err != nil {
		return models.Blog{}, fmt.Errorf("update blog %d: %w", blog.ID, err)
	}
	return decodeContent[models.Blog](resp)
}

func (b *blogService) Delete(ctx context.Context, id int64) error {
	path, err := idPath(pathBlogs, id)
	if err != nil {
		return err
	}

	if _, err = b.api.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete blog %d: %w", id, err)
	}
	return nil
}

func (b *blogService) Publish(ctx context.Context, id int64) (models.Blog, error) {
	path, err := idPath(pathBlogs, id)
	if err != nil {
		return models.Blog{}, err
	}

	resp, err := b.api.Post(ctx, path+"/publish", nil)
	if err != nil {
		return models.Blog{}, fmt.Errorf("publish blog %d: %w", id, err)
	}
	return decodeContent[models.Blog](resp)
}

// blogBody picks the request encoding: multipart only when files are attached.
func blogBody(blog models.Blog, files []models.FilePart) any {
	if len(files) == 0 {
		return blog
	}
	return models.NewMultipartForm(blog, files...)
}

// Excerpt returns the visible text of an HTML fragment with whitespace
// collapsed, cut to at most n runes. A cut excerpt ends with "…" which
// counts toward n. n <= 0 means no limit.
func Excerpt(html string, n int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("script, style").Remove()

	text := strings.Join(strings.Fields(doc.Text()), " ")
	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}

	runes := []rune(text)
	cut := strings.TrimRight(string(runes[:n-1]), " ")
	return cut + "…"
}
