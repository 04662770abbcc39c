package model

// Category classifies a transaction as money in or money out.
type Category string

const (
	CategoryNone    Category = ""
	CategoryIncome  Category = "income"
	CategoryExpense Category = "expense"
)

// Categories lists the selectable categories in display order.
func Categories() []Category {
	return []Category{CategoryIncome, CategoryExpense}
}

// Account is one selectable subject label in the chart of accounts.
type Account struct {
	Name        string
	Description string
}
