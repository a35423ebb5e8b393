package view

// Response is the envelope for successful API responses.
type Response[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the envelope for failed API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse carries a bare status message with no data payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateResponse builds the wire envelope for a handler result. When err is
// non-nil the data payload is dropped and only the error surfaces.
func CreateResponse[T any](data T, err error, message string) any {
	if err != nil {
		return ErrorResponse{
			Error:   err.Error(),
			Message: message,
		}
	}
	return Response[T]{
		Data:    data,
		Message: message,
	}
}

// Pagination is the page metadata attached to list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// PageResponse is the envelope for paginated list responses.
type PageResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
	Message    string     `json:"message,omitempty"`
}

// NewPageResponse computes page metadata for a list payload.
func NewPageResponse[T any](items []T, total int64, page, pageSize int, message string) PageResponse[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(total) / pageSize
		if int(total)%pageSize > 0 {
			totalPages++
		}
	}
	return PageResponse[T]{
		Data:  items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
		Message: message,
	}
}
