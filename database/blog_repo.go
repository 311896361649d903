package database

import (
	"errors"

	"gorm.io/gorm"

	"blog-api/errs"
	"blog-api/models"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// FindPage returns a window of blogs ordered by creation time, newest
// first. Ties fall back to id so the order is stable across pages.
func (r *BlogRepo) FindPage(offset, limit int) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&blogs).Error
	return blogs, err
}

// Count returns the number of blogs in the table, ignoring pagination.
func (r *BlogRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Blog{}).Count(&count).Error
	return count, err
}

// FindByID returns a blog by its id, or a not-found error.
func (r *BlogRepo) FindByID(id int) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewBlogNotFoundError()
		}
		return nil, err
	}
	return &blog, nil
}

// Add inserts a new blog and fills in its store-assigned id.
func (r *BlogRepo) Add(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// Save writes back every column of an existing blog.
func (r *BlogRepo) Save(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

// Delete removes a blog permanently. Missing rows are the caller's problem;
// deleting an absent id is not an error at this layer.
func (r *BlogRepo) Delete(id int) error {
	return r.db.Delete(&models.Blog{}, id).Error
}
