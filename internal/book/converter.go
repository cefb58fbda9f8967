package book

// Entity/DTO mapping. The scalar conversions are pure 1:1 field copies;
// passing a nil pointer is a caller bug and panics. The list variants
// preserve order and count and always return a non-nil slice.

// ToDTO maps a persisted entity to its wire shape. b must be non-nil.
func ToDTO(b *Book) BookDTO {
	return BookDTO{
		Record:      b.Record,
		Title:       b.Title,
		Description: b.Description,
		Author:      b.Author,
		ISBN:        b.ISBN,
	}
}

// ToEntity maps a wire shape to the entity. d must be non-nil.
func ToEntity(d *BookDTO) Book {
	return Book{
		Record:      d.Record,
		Title:       d.Title,
		Description: d.Description,
		Author:      d.Author,
		ISBN:        d.ISBN,
	}
}

// ToDTOList applies ToDTO element-wise.
func ToDTOList(books []Book) []BookDTO {
	dtos := make([]BookDTO, 0, len(books))
	for i := range books {
		dtos = append(dtos, ToDTO(&books[i]))
	}
	return dtos
}

// ToEntityList applies ToEntity element-wise.
func ToEntityList(dtos []BookDTO) []Book {
	books := make([]Book, 0, len(dtos))
	for i := range dtos {
		books = append(books, ToEntity(&dtos[i]))
	}
	return books
}
