package usecase

const (
	defaultPage    = 1
	defaultPerPage = 5
)

// Paginated is the envelope every listing endpoint returns.
type Paginated[T any] struct {
	Data        []T   `json:"data"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	return page, perPage
}

func totalPages(totalItems int64, perPage int) int {
	pages := totalItems / int64(perPage)
	if totalItems%int64(perPage) != 0 {
		pages++
	}
	return int(pages)
}

func paginate[T any](data []T, totalItems int64, page, perPage int) *Paginated[T] {
	return &Paginated[T]{
		Data:        data,
		TotalItems:  totalItems,
		TotalPages:  totalPages(totalItems, perPage),
		CurrentPage: page,
		PerPage:     perPage,
	}
}
