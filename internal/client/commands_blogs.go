package client

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-biz-admin/internal/service"
	"github.com/MKhiriev/go-biz-admin/internal/tui"
	"github.com/MKhiriev/go-biz-admin/models"
)

const listExcerptLength = 40

var blogHeaders = []string{"ID", "Title", "Status", "Slug", "Excerpt"}

func blogRow(b models.Blog, excerpt int) []string {
	return []string{fmt.Sprint(b.ID), b.Title, b.Status, b.Slug, service.Excerpt(b.Content, excerpt)}
}

func (a *App) listBlogs(ctx context.Context, args []string) error {
	fs := newFlagSet("blogs list", a.out)
	status := fs.String("status", "", "DRAFT, PUBLISHED or ARCHIVED")
	tag := fs.String("tag", "", "only posts with this tag")
	search := fs.String("search", "", "full-text search")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	blogs, err := a.services.BlogService.List(ctx, models.BlogFilter{
		Status: strings.ToUpper(*status),
		Tag:    *tag,
		Search: *search,
	})
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(blogs))
	for _, b := range blogs {
		rows = append(rows, blogRow(b, listExcerptLength))
	}
	fmt.Fprintln(a.out, tui.RenderTable(blogHeaders, rows))
	return nil
}

func (a *App) getBlog(ctx context.Context, args []string) error {
	id, err := idArg("blogs get", args)
	if err != nil {
		return err
	}

	blog, err := a.services.BlogService.Get(ctx, id)
	if err != nil {
		return err
	}
	a.printBlog(blog)
	return nil
}

func (a *App) createBlog(ctx context.Context, args []string) error {
	fs := newFlagSet("blogs create", a.out)
	title := fs.String("title", "", "post title")
	summary := fs.String("summary", "", "short description")
	content := fs.String("content", "", "HTML body")
	contentFile := fs.String("content-file", "", "read the HTML body from a file")
	tags := fs.String("tags", "", "comma separated tags")
	cover := fs.String("cover", "", "cover image to upload")
	attachments := fs.String("attach", "", "comma separated files to upload")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	body := *content
	if *contentFile != "" {
		data, err := os.ReadFile(*contentFile)
		if err != nil {
			return fmt.Errorf("read content file: %w", err)
		}
		body = string(data)
	}

	var paths []fileFlag
	if *cover != "" {
		paths = append(paths, fileFlag{field: "cover", path: *cover})
	}
	for _, p := range splitList(*attachments) {
		paths = append(paths, fileFlag{field: "attachments", path: p})
	}

	files, closeFiles, err := openFileParts(paths)
	if err != nil {
		return err
	}
	defer closeFiles()

	blog, err := a.services.BlogService.Create(ctx, models.Blog{
		Title:   *title,
		Summary: *summary,
		Content: body,
		Tags:    splitList(*tags),
	}, files...)
	if err != nil {
		return err
	}
	a.printBlog(blog)
	return nil
}

func (a *App) publishBlog(ctx context.Context, args []string) error {
	id, err := idArg("blogs publish", args)
	if err != nil {
		return err
	}

	blog, err := a.services.BlogService.Publish(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, tui.RenderTable(blogHeaders, [][]string{blogRow(blog, listExcerptLength)}))
	return nil
}

func (a *App) deleteBlog(ctx context.Context, args []string) error {
	fs := newFlagSet("blogs delete", a.out)
	yes := fs.Bool("yes", false, "delete without asking")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	id, err := idArg("blogs delete", positional)
	if err != nil {
		return err
	}

	if err = a.confirmDelete(fmt.Sprintf("blog post %d", id), *yes); err != nil {
		return err
	}
	if err = a.services.BlogService.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Blog post %d deleted\n", id)
	return nil
}

func (a *App) printBlog(b models.Blog) {
	fmt.Fprintln(a.out, tui.RenderRecord([][2]string{
		{"ID", fmt.Sprint(b.ID)},
		{"Title", b.Title},
		{"Slug", b.Slug},
		{"Status", b.Status},
		{"Tags", strings.Join(b.Tags, ", ")},
		{"Cover", b.CoverURL},
		{"Attachments", strings.Join(b.Attachments, ", ")},
		{"Excerpt", service.Excerpt(b.Content, 200)},
	}))
}

type fileFlag struct {
	field string
	path  string
}

// openFileParts opens every file for upload. The returned func closes them.
func openFileParts(flags []fileFlag) ([]models.FilePart, func(), error) {
	parts := make([]models.FilePart, 0, len(flags))
	opened := make([]*os.File, 0, len(flags))
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	for _, ff := range flags {
		f, err := os.Open(ff.path)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("open %s: %w", ff.field, err)
		}
		opened = append(opened, f)

		parts = append(parts, models.FilePart{
			Field:       ff.field,
			FileName:    filepath.Base(ff.path),
			ContentType: mime.TypeByExtension(filepath.Ext(ff.path)),
			Reader:      f,
		})
	}
	return parts, closeAll, nil
}
