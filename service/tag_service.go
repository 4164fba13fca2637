// file: service/tag_service.go

package service

import (
	"book-review-api/model"
	"book-review-api/repository"
	"database/sql"
	"errors"
)

var (
	// ErrTagNotFound is returned when the requested tag does not exist.
	ErrTagNotFound = errors.New("tag not found")
	// ErrTagAlreadyExists is returned when creating a tag whose name is taken.
	ErrTagAlreadyExists = errors.New("tag with this name already exists")
)

// TagService handles the business logic around tags.
type TagService struct {
	tagRepo  repository.ITagRepository
	bookRepo repository.IBookRepository
}

// NewTagService creates a new TagService.
func NewTagService(tagRepo repository.ITagRepository, bookRepo repository.IBookRepository) *TagService {
	return &TagService{tagRepo: tagRepo, bookRepo: bookRepo}
}

// GetAllTags lists every tag, newest first.
func (s *TagService) GetAllTags() ([]*model.Tag, error) {
	return s.tagRepo.GetAllTags()
}

// CreateTag creates a new tag with a unique name.
func (s *TagService) CreateTag(name string) (*model.Tag, error) {
	_, err := s.tagRepo.GetTagByName(name)
	if err == nil {
		return nil, ErrTagAlreadyExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	tag := &model.Tag{Name: name}
	if err := s.tagRepo.CreateTag(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// AddTagsToBook attaches the named tags to a book, creating any that
// do not exist yet, and returns the book with its full tag list.
func (s *TagService) AddTagsToBook(bookID int, req *model.AddTagsToBookRequest) (*model.Book, error) {
	book, err := s.bookRepo.GetBookByID(bookID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	for _, item := range req.Tags {
		tag, err := s.tagRepo.GetTagByName(item.Name)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return nil, err
			}
			tag = &model.Tag{Name: item.Name}
			if err := s.tagRepo.CreateTag(tag); err != nil {
				return nil, err
			}
		}
		if err := s.tagRepo.AttachTagToBook(bookID, tag.ID); err != nil {
			return nil, err
		}
	}

	tags, err := s.tagRepo.GetTagsByBookID(bookID)
	if err != nil {
		return nil, err
	}
	book.Tags = tags

	return book, nil
}

// UpdateTag renames a tag.
func (s *TagService) UpdateTag(tagID int, name string) (*model.Tag, error) {
	tag, err := s.tagRepo.GetTagByID(tagID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}

	tag.Name = name
	if err := s.tagRepo.UpdateTag(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag removes a tag and all of its book links.
func (s *TagService) DeleteTag(tagID int) error {
	err := s.tagRepo.DeleteTag(tagID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTagNotFound
	}
	return err
}
