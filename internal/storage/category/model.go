package category

// TableName is the SQL table holding categories.
const TableName = "categories"

// maxBatch bounds how many bound parameters one statement carries.
const maxBatch = 500

// Category represents a category record.
type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func chunk(names []string) [][]string {
	var chunks [][]string
	for start := 0; start < len(names); start += maxBatch {
		end := start + maxBatch
		if end > len(names) {
			end = len(names)
		}
		chunks = append(chunks, names[start:end])
	}
	return chunks
}
