package table

const windowSize = 5

// PageLink is one entry of the page navigation bar. Ellipsis entries carry
// no page number.
type PageLink struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

type Page[T any] struct {
	Items       []T        `json:"items"`
	Page        int        `json:"page"`
	TotalPages  int        `json:"total_pages"`
	TotalItems  int        `json:"total_items"`
	PageSize    int        `json:"page_size"`
	WindowStart int        `json:"window_start"`
	WindowEnd   int        `json:"window_end"`
	Links       []PageLink `json:"links"`
}

// Paginate slices records into pages of pageSize. A requested page outside
// [1, totalPages] falls back to the first page, not the nearest one.
func Paginate[T any](records []T, pageSize, requestedPage int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := requestedPage
	if page < 1 || page > totalPages {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	windowStart, windowEnd := pageWindow(page, totalPages)

	return Page[T]{
		Items:       records[start:end:end],
		Page:        page,
		TotalPages:  totalPages,
		TotalItems:  total,
		PageSize:    pageSize,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Links:       pageLinks(page, totalPages, windowStart, windowEnd),
	}
}

func pageWindow(page, totalPages int) (int, int) {
	if totalPages <= windowSize {
		return 1, totalPages
	}
	half := windowSize / 2
	start := page - half
	if start < 1 {
		start = 1
	}
	end := page + half
	if end > totalPages {
		end = totalPages
	}
	return start, end
}

func pageLinks(page, totalPages, windowStart, windowEnd int) []PageLink {
	links := make([]PageLink, 0, windowEnd-windowStart+5)
	if windowStart > 1 {
		links = append(links, PageLink{Page: 1, Current: page == 1})
		if windowStart > 2 {
			links = append(links, PageLink{Ellipsis: true})
		}
	}
	for p := windowStart; p <= windowEnd; p++ {
		links = append(links, PageLink{Page: p, Current: p == page})
	}
	if windowEnd < totalPages {
		if windowEnd < totalPages-1 {
			links = append(links, PageLink{Ellipsis: true})
		}
		links = append(links, PageLink{Page: totalPages, Current: page == totalPages})
	}
	return links
}
