// file: repository/tag_repository.go

package repository

import (
	"book-review-api/model"
	"database/sql"
)

// ITagRepository defines the contract for tag database operations.
type ITagRepository interface {
	CreateTag(tag *model.Tag) error
	GetTagByID(id int) (*model.Tag, error)
	GetTagByName(name string) (*model.Tag, error)
	GetAllTags() ([]*model.Tag, error)
	GetTagsByBookID(bookID int) ([]*model.Tag, error)
	AttachTagToBook(bookID, tagID int) error
	UpdateTag(tag *model.Tag) error
	DeleteTag(id int) error
}

type TagRepository struct {
	DB *sql.DB
}

func NewTagRepository(db *sql.DB) *TagRepository {
	return &TagRepository{DB: db}
}

func (r *TagRepository) CreateTag(tag *model.Tag) error {
	query := `INSERT INTO tags (name) VALUES ($1) RETURNING id, created_at`
	return r.DB.QueryRow(query, tag.Name).Scan(&tag.ID, &tag.CreatedAt)
}

func (r *TagRepository) GetTagByID(id int) (*model.Tag, error) {
	tag := &model.Tag{}
	query := `SELECT id, name, created_at FROM tags WHERE id=$1`
	err := r.DB.QueryRow(query, id).Scan(&tag.ID, &tag.Name, &tag.CreatedAt)
	if err != nil {
		return nil, err
	}
	return tag, nil
}

func (r *TagRepository) GetTagByName(name string) (*model.Tag, error) {
	tag := &model.Tag{}
	query := `SELECT id, name, created_at FROM tags WHERE name=$1`
	err := r.DB.QueryRow(query, name).Scan(&tag.ID, &tag.Name, &tag.CreatedAt)
	if err != nil {
		return nil, err
	}
	return tag, nil
}

func (r *TagRepository) GetAllTags() ([]*model.Tag, error) {
	query := `SELECT id, name, created_at FROM tags ORDER BY created_at DESC`
	return r.queryTags(query)
}

func (r *TagRepository) GetTagsByBookID(bookID int) ([]*model.Tag, error) {
	query := `SELECT t.id, t.name, t.created_at FROM tags t
		JOIN book_tags bt ON bt.tag_id = t.id
		WHERE bt.book_id=$1 ORDER BY t.name`
	return r.queryTags(query, bookID)
}

func (r *TagRepository) queryTags(query string, args ...interface{}) ([]*model.Tag, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*model.Tag
	for rows.Next() {
		tag := &model.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.CreatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// AttachTagToBook links a tag to a book. Attaching the same tag twice
// is a no-op thanks to ON CONFLICT DO NOTHING.
func (r *TagRepository) AttachTagToBook(bookID, tagID int) error {
	query := `INSERT INTO book_tags (book_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.DB.Exec(query, bookID, tagID)
	return err
}

func (r *TagRepository) UpdateTag(tag *model.Tag) error {
	result, err := r.DB.Exec(`UPDATE tags SET name=$1 WHERE id=$2`, tag.Name, tag.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *TagRepository) DeleteTag(id int) error {
	result, err := r.DB.Exec(`DELETE FROM tags WHERE id=$1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
