package database

import (
	"gorm.io/gorm"
)

type Database struct {
	blogRepo *BlogRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		blogRepo: NewBlogRepo(db),
	}
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}
