package db

// KNNQuery is the input for vector similarity search. Filter is a
// pre-rendered FT pre-filter expression; empty means match-all.
type KNNQuery struct {
	IndexName    string
	Filter       string
	Vector       []float32
	K            int
	ReturnFields []string
}

// TextQuery is the input for text/boolean search. Query is a fully
// rendered FT query string. SortBy empty means relevance order.
type TextQuery struct {
	IndexName    string
	Query        string
	SortBy       string
	SortDesc     bool
	Offset       int
	Limit        int
	ReturnFields []string
	WithScores   bool
}

// SearchResult is the output of a search operation. Total is the number
// of documents matched before LIMIT, not the page length.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
