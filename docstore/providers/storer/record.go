package storer

import "time"

// Record is the storage unit shared by every backend. For query history the
// fields carry query/SQL/result; for documentation Query holds the title and
// Result the body, which is how the collection stays one flat namespace.
type Record struct {
	Id        string
	Vector    []float32
	Query     string
	SQLQuery  string
	Result    string
	Success   bool
	Kind      string
	CreatedAt time.Time
	Score     float32
}
