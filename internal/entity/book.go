package entity

const (
	StatusAvailable = "Available"
	StatusBorrowed  = "Borrowed"
)

type Book struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Condition string `json:"condition"`
	Status    string `json:"status"`
}
