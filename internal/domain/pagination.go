package domain

// TasksPerPage is the fixed page size for paginated listings.
const TasksPerPage = 20

// PageCount returns the number of pages needed to hold total rows at
// perPage rows per page. There is always at least one page, even when
// total is zero.
func PageCount(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// PageOffset returns the row offset of the first row on page (1-based).
func PageOffset(page, perPage int) int {
	if page <= 1 {
		return 0
	}
	return (page - 1) * perPage
}
