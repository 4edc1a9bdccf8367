package core

// Category is an entry of the suggestion catalog. Transactions store only
// the name, so the catalog is never a foreign key.
type Category struct {
	ID    string
	Name  string
	Color string
	Type  TransactionType
}

// QuickAction prefills a draft for a frequent entry.
type QuickAction struct {
	Label    string
	Icon     string
	Type     TransactionType
	Category string
}

// DefaultPaymentMethod is preselected for new drafts.
const DefaultPaymentMethod = "Efectivo"

var DefaultCategories = []Category{
	{ID: "1", Name: "Sueldo", Color: "#2DD4BF", Type: Income},
	{ID: "2", Name: "Freelance", Color: "#A78BFA", Type: Income},
	{ID: "3", Name: "Comida", Color: "#F472B6", Type: Expense},
	{ID: "4", Name: "Transporte", Color: "#60A5FA", Type: Expense},
	{ID: "5", Name: "Hogar", Color: "#94A3B8", Type: Expense},
	{ID: "6", Name: "Entretenimiento", Color: "#FB923C", Type: Expense},
	{ID: "7", Name: "Salud", Color: "#34D399", Type: Expense},
}

var QuickActions = []QuickAction{
	{Label: "Sueldo", Icon: "💼", Type: Income, Category: "Sueldo"},
	{Label: "Almuerzo", Icon: "🥗", Type: Expense, Category: "Comida"},
	{Label: "Taxi/App", Icon: "🚖", Type: Expense, Category: "Transporte"},
	{Label: "Compras", Icon: "🛍️", Type: Expense, Category: "Hogar"},
}

var PaymentMethods = []string{
	"Efectivo",
	"Tarjeta Crédito",
	"Tarjeta Débito",
	"Billetera Digital",
	"Transferencia",
}

// CategoriesFor returns the catalog entries offered for a transaction type.
func CategoriesFor(t TransactionType) []Category {
	out := make([]Category, 0, len(DefaultCategories))
	for _, c := range DefaultCategories {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// DefaultCategoryFor returns the category preselected when switching type.
func DefaultCategoryFor(t TransactionType) string {
	if t == Income {
		return "Sueldo"
	}
	return "Comida"
}

// FindQuickAction looks up a quick action by its label.
func FindQuickAction(label string) (QuickAction, bool) {
	for _, a := range QuickActions {
		if a.Label == label {
			return a, true
		}
	}
	return QuickAction{}, false
}

// Draft returns a draft prefilled with the action's type and category.
func (a QuickAction) Draft() Draft {
	return Draft{
		Type:          a.Type,
		Category:      a.Category,
		PaymentMethod: DefaultPaymentMethod,
	}
}

// NewDraft returns an empty draft with the defaults for t.
func NewDraft(t TransactionType) Draft {
	return Draft{
		Type:          t,
		Category:      DefaultCategoryFor(t),
		PaymentMethod: DefaultPaymentMethod,
	}
}
