package handler

import (
	"book-review-api/common"
	"book-review-api/model"
	"book-review-api/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

type TagHandler struct {
	tagService *service.TagService
}

func NewTagHandler(tagService *service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// ListTags godoc
// @Summary      List all tags
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.Tag
// @Router       /api/v1/tags [get]
func (h *TagHandler) ListTags(w http.ResponseWriter, r *http.Request) *common.AppError {
	tags, err := h.tagService.GetAllTags()
	if err != nil {
		return common.ErrInternal(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(tags)
	return nil
}

// CreateTag godoc
// @Summary      Create a new tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.CreateTagRequest true "Tag name"
// @Success      201 {object} model.Tag
// @Failure      409 {object} common.AppError
// @Router       /api/v1/tags [post]
func (h *TagHandler) CreateTag(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateTagRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	tag, err := h.tagService.CreateTag(req.Name)
	if err != nil {
		if errors.Is(err, service.ErrTagAlreadyExists) {
			return common.NewAppError(http.StatusConflict, common.CodeTagAlreadyExists, "Tag with this name already exists", nil)
		}
		return common.ErrInternal(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(tag)
	return nil
}

// AddTagsToBook godoc
// @Summary      Attach tags to a book, creating missing ones
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Book ID"
// @Param        request body model.AddTagsToBookRequest true "Tags"
// @Success      200 {object} model.Book
// @Failure      404 {object} common.AppError
// @Router       /api/v1/tags/book/{id} [post]
func (h *TagHandler) AddTagsToBook(w http.ResponseWriter, r *http.Request) *common.AppError {
	bookID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, common.CodeInvalidRequest, "Invalid book ID", nil)
	}

	var req model.AddTagsToBookRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	book, err := h.tagService.AddTagsToBook(bookID, &req)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			return common.NewAppError(http.StatusNotFound, common.CodeBookNotFound, "Book not found", nil)
		}
		return common.ErrInternal(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(book)
	return nil
}

// UpdateTag godoc
// @Summary      Rename a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Tag ID"
// @Param        request body model.CreateTagRequest true "New name"
// @Success      200 {object} model.Tag
// @Failure      404 {object} common.AppError
// @Router       /api/v1/tags/{id} [put]
func (h *TagHandler) UpdateTag(w http.ResponseWriter, r *http.Request) *common.AppError {
	tagID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, common.CodeInvalidRequest, "Invalid tag ID", nil)
	}

	var req model.CreateTagRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	tag, err := h.tagService.UpdateTag(tagID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			return common.NewAppError(http.StatusNotFound, common.CodeTagNotFound, "Tag not found", nil)
		}
		return common.ErrInternal(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(tag)
	return nil
}

// DeleteTag godoc
// @Summary      Delete a tag
// @Tags         tags
// @Security     BearerAuth
// @Param        id path int true "Tag ID"
// @Success      204
// @Failure      404 {object} common.AppError
// @Router       /api/v1/tags/{id} [delete]
func (h *TagHandler) DeleteTag(w http.ResponseWriter, r *http.Request) *common.AppError {
	tagID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, common.CodeInvalidRequest, "Invalid tag ID", nil)
	}

	if err := h.tagService.DeleteTag(tagID); err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			return common.NewAppError(http.StatusNotFound, common.CodeTagNotFound, "Tag not found", nil)
		}
		return common.ErrInternal(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
