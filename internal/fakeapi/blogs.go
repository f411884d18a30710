package fakeapi

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-biz-admin/internal/app"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/utils"
	"github.com/MKhiriev/go-biz-admin/models"
)

// Multipart fields of blog create/update requests.
const (
	fieldCover       = "cover"
	fieldAttachments = "attachments"
)

func (h *Handler) listBlogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.BlogFilter{
		Status: q.Get("status"),
		Tag:    q.Get("tag"),
		Search: q.Get("search"),
	}
	utils.WriteContent(w, h.store.Blogs(filter), http.StatusOK)
}

func (h *Handler) getBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	blog, err := h.store.Blog(id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	utils.WriteContent(w, blog, http.StatusOK)
}

func (h *Handler) createBlog(w http.ResponseWriter, r *http.Request) {
	blog, ok := h.readBlog(w, r)
	if !ok {
		return
	}
	blog.ID = 0
	if user, found := utils.GetUserFromContext(r.Context()); found {
		blog.AuthorID = user.ID
	}
	h.saveBlog(w, r, blog, http.StatusCreated)
}

func (h *Handler) updateBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	blog, ok := h.readBlog(w, r)
	if !ok {
		return
	}
	blog.ID = id
	h.saveBlog(w, r, blog, http.StatusOK)
}

func (h *Handler) saveBlog(w http.ResponseWriter, r *http.Request, blog models.Blog, status int) {
	if err := h.validator.Validate(r.Context(), blog); err != nil {
		writeStoreError(w, r, err)
		return
	}

	saved, err := h.store.SaveBlog(blog)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	utils.WriteContent(w, saved, status)
}

func (h *Handler) publishBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	blog, err := h.store.PublishBlog(id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	utils.WriteContent(w, blog, http.StatusOK)
}

func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteBlog(id); err != nil {
		writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// readBlog accepts either a JSON body or a multipart form whose "data" field
// holds the JSON post and whose "cover"/"attachments" parts hold files.
func (h *Handler) readBlog(w http.ResponseWriter, r *http.Request) (models.Blog, bool) {
	var blog models.Blog

	if mediaType(r) != "multipart/form-data" {
		return blog, decodeJSON(w, r, &blog)
	}

	log := logger.FromRequest(r)
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		utils.WriteError(w, app.MsgInvalidDataProvided, app.CodeBadRequest, http.StatusBadRequest)
		return blog, false
	}

	if err := json.Unmarshal([]byte(r.FormValue(models.DefaultMultipartDataField)), &blog); err != nil {
		log.Err(err).Msg("invalid JSON in multipart data field")
		utils.WriteError(w, app.MsgInvalidDataProvided, app.CodeBadRequest, http.StatusBadRequest)
		return blog, false
	}

	files := r.MultipartForm.File
	if covers := files[fieldCover]; len(covers) > 0 {
		url, err := h.keepFile(covers[0])
		if err != nil {
			writeStoreError(w, r, err)
			return blog, false
		}
		blog.CoverURL = url
	}
	for _, fh := range files[fieldAttachments] {
		url, err := h.keepFile(fh)
		if err != nil {
			writeStoreError(w, r, err)
			return blog, false
		}
		blog.Attachments = append(blog.Attachments, url)
	}

	return blog, true
}

// keepFile stores an uploaded part and returns its download path.
func (h *Handler) keepFile(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("error opening uploaded file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("error reading uploaded file: %w", err)
	}

	name := h.ids.Generate() + filepath.Ext(fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.store.SaveFile(name, contentType, data)

	return "/files/" + name, nil
}

func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	f, err := h.store.File(chi.URLParam(r, "name"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", f.contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(f.data)
}
