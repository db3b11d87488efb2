package models

// Category type codes accepted on creation, and the labels the API renders.
const (
	CategoryIncome  = "E"
	CategoryExpense = "S"

	CategoryIncomeLabel  = "Entrada"
	CategoryExpenseLabel = "Saída"
)

// Category is a category as rendered by the API.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// CategoryPayload is the body of POST /v1/categories/.
type CategoryPayload struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// CategoryLabel maps a type code to its rendered label. Unknown codes map to "".
func CategoryLabel(code string) string {
	switch code {
	case CategoryIncome:
		return CategoryIncomeLabel
	case CategoryExpense:
		return CategoryExpenseLabel
	}
	return ""
}
