package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/entities"
)

// BookStore defines database operations for the livro resource.
type BookStore interface {
	List(ctx context.Context) ([]entities.Book, error)
	Create(ctx context.Context, book entities.Book) (*entities.Book, error)
	Update(ctx context.Context, id uint, book entities.Book) (*entities.Book, error)
	Delete(ctx context.Context, id uint) error
}

// BookRequest is the body accepted by create and update. Absent fields are
// stored as NULL.
type BookRequest struct {
	Author          *string        `json:"autor" example:"Machado de Assis"`
	PublicationDate *entities.Date `json:"data_publicacao" swaggertype:"string" format:"date" example:"1899-01-01"`
	Title           *string        `json:"titulo" example:"Dom Casmurro"`
}

func (r BookRequest) toEntity() entities.Book {
	return entities.Book{
		Author:          r.Author,
		PublicationDate: r.PublicationDate,
		Title:           r.Title,
	}
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// List godoc
// @Summary List books
// @Tags livros
// @Produce json
// @Success 200 {array} entities.Book
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /livros [get]
func (bc *BooksController) List(c *gin.Context) {
	books, err := bc.store.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "book", "list books", http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, books)
}

// Create godoc
// @Summary Create a book
// @Tags livros
// @Accept json
// @Produce json
// @Param request body BookRequest true "Book"
// @Success 201 {object} entities.Book
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /livros [post]
func (bc *BooksController) Create(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	book, err := bc.store.Create(c.Request.Context(), req.toEntity())
	if err != nil {
		respondStoreError(c, err, "book", "create book", http.StatusUnprocessableEntity)
		return
	}
	respondCreated(c, book)
}

// Update godoc
// @Summary Replace a book
// @Description Every attribute is replaced; omitted fields become null.
// @Tags livros
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param request body BookRequest true "Book"
// @Success 200 {object} entities.Book
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /livros/{id} [put]
func (bc *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c, err)
		return
	}

	book, err := bc.store.Update(c.Request.Context(), id, req.toEntity())
	if err != nil {
		respondStoreError(c, err, "book", "update book", http.StatusUnprocessableEntity)
		return
	}
	c.JSON(http.StatusOK, book)
}

// Delete godoc
// @Summary Delete a book
// @Description Succeeds whether or not the book exists.
// @Tags livros
// @Param id path int true "Book ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /livros/{id} [delete]
func (bc *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err, "book", "delete book", http.StatusConflict)
		return
	}
	c.Status(http.StatusNoContent)
}
