package domain

// Page describes an offset/limit window over a sorted result set.
type Page struct {
	Offset int
	Limit  int
}

// NewPage validates the from/size pair and converts it to an offset window.
// The offset is snapped to the page boundary `(from / size) * size`, so a
// `from` that is not a multiple of `size` lands on the start of the page
// containing it rather than on the element itself.
func NewPage(from, size int) (Page, error) {
	if from < 0 {
		return Page{}, NewValidationError("from index must be zero or positive")
	}
	if size < 1 {
		return Page{}, NewValidationError("page size must be positive")
	}
	return Page{Offset: (from / size) * size, Limit: size}, nil
}
