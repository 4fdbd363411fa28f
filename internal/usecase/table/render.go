package table

// Placeholder is rendered for empty cells.
const Placeholder = "—"

// CellFunc resolves a column key against a row. ok=false renders the
// placeholder.
type CellFunc[T any] func(row T, key string) (value string, ok bool)

type Row struct {
	Cells []string `json:"cells"`
}

type Rendered[T any] struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
	Page    Page[T]  `json:"pagination"`
}

func Cells[T any](columns []Column, row T, cell CellFunc[T]) Row {
	cells := make([]string, len(columns))
	for i, col := range columns {
		v, ok := cell(row, col.Key)
		if !ok {
			v = Placeholder
		}
		cells[i] = v
	}
	return Row{Cells: cells}
}

// Render paginates rows and projects the current page through the visible
// columns.
func Render[T any](columns []Column, rows []T, pageSize, page int, cell CellFunc[T]) Rendered[T] {
	p := Paginate(rows, pageSize, page)
	out := make([]Row, len(p.Items))
	for i, row := range p.Items {
		out[i] = Cells(columns, row, cell)
	}
	return Rendered[T]{
		Columns: columns,
		Rows:    out,
		Page:    p,
	}
}
