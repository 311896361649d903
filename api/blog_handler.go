package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"blog-api/errs"
	"blog-api/models"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// BlogRepo is the storage capability the handler needs. Satisfied by
// database.BlogRepo in production and by an in-memory fake in tests.
type BlogRepo interface {
	FindPage(offset, limit int) ([]models.Blog, error)
	Count() (int64, error)
	FindByID(id int) (*models.Blog, error)
	Add(blog *models.Blog) error
	Save(blog *models.Blog) error
	Delete(id int) error
}

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	validate  *validator.Validate
	blogRepo  BlogRepo
	now       func() time.Time
}

func newBlogHandler(blogRepo BlogRepo) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		validate:  validator.New(),
		blogRepo:  blogRepo,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// listBlogs returns one page of blogs, newest first, with pagination
// metadata. Unlike the other operations, any storage fault here is caught
// and masked as a generic internal error.
func (h blogHandler) listBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, "page", defaultPage)
		pageSize := queryInt(r, "pageSize", defaultPageSize)
		if page <= 0 {
			page = defaultPage
		}
		if pageSize <= 0 {
			pageSize = defaultPageSize
		}

		totalCount, err := h.blogRepo.Count()
		if err != nil {
			h.logger.Error().Err(err).Msg("error counting blogs")
			h.responder.WriteError(w, errs.NewInternalError(err))
			return
		}

		blogs, err := h.blogRepo.FindPage((page-1)*pageSize, pageSize)
		if err != nil {
			h.logger.Error().Err(err).Msg("error fetching blogs")
			h.responder.WriteError(w, errs.NewInternalError(err))
			return
		}
		if blogs == nil {
			blogs = []models.Blog{}
		}

		h.responder.WriteJSON(w, http.StatusOK, BlogPage{
			Data:        blogs,
			TotalCount:  totalCount,
			CurrentPage: page,
			PageSize:    pageSize,
			TotalPages:  totalPages(totalCount, pageSize),
		})
	}
}

// getBlog retrieves a single blog by id.
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blogID(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBlogNotFoundError())
			return
		}

		blog, err := h.blogRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, blog)
	}
}

// createBlog validates the payload, stamps server-side timestamps and
// persists a new blog. Client-supplied id or timestamps are never read.
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.BlogPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewInvalidDataError())
			return
		}
		if err := h.validate.Struct(payload); err != nil {
			h.logger.Warn().Err(err).Msg("rejected invalid blog payload")
			h.responder.WriteError(w, errs.NewInvalidDataError())
			return
		}

		now := h.now()
		blog := models.Blog{
			Title:     payload.Title,
			Content:   payload.Content,
			Author:    payload.Author,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := h.blogRepo.Add(&blog); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if username, err := ctxUsername(r.Context()); err == nil {
			h.logger.Info().Str("username", username).Int("blogID", blog.ID).Msg("blog created")
		}

		w.Header().Set("Location", fmt.Sprintf("/api/blogs/%d", blog.ID))
		h.responder.WriteJSON(w, http.StatusCreated, blog)
	}
}

// updateBlog replaces title, content and author wholesale and refreshes
// updatedAt; id and createdAt are untouched. There is no merge: absent
// payload fields overwrite with their zero value.
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blogID(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBlogNotFoundError())
			return
		}

		blog, err := h.blogRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload models.BlogPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewInvalidDataError())
			return
		}

		blog.Title = payload.Title
		blog.Content = payload.Content
		blog.Author = payload.Author
		blog.UpdatedAt = h.now()

		if err := h.blogRepo.Save(blog); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, blog)
	}
}

// deleteBlog removes a blog permanently. No tombstone remains, and the id
// is never handed out again.
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blogID(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBlogNotFoundError())
			return
		}

		if _, err := h.blogRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.blogRepo.Delete(id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Blog deleted successfully"})
	}
}

// blogID parses the {blogID} route parameter.
func blogID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "blogID"))
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or not a number.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// totalPages is ceil(totalCount / pageSize) for pageSize > 0.
func totalPages(totalCount int64, pageSize int) int {
	return int((totalCount + int64(pageSize) - 1) / int64(pageSize))
}
