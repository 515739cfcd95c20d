package services

import "strings"

// categoryRule maps description keywords to a spending category at ingest
// time. First match wins, in declaration order.
type categoryRule struct {
	category string
	keywords []string
}

var categoryRules = []categoryRule{
	{"Food & Dining", []string{"zomato", "swiggy", "dominos", "restaurant", "cafe", "mcdonald"}},
	{"Groceries", []string{"bigbasket", "grocery", "dmart", "groceries", "supermarket"}},
	{"Travel", []string{"uber", "ola", "flight", "indigo", "airasia", "train"}},
	{"Utilities", []string{"electricity", "water", "gas", "internet", "mobile"}},
	{"Salary", []string{"salary", "payroll", "salarycredit"}},
}

// Categorize assigns a spending category from the description. An empty
// description is "Uncategorized"; an unmatched one is "Other".
func Categorize(description string) string {
	if strings.TrimSpace(description) == "" {
		return "Uncategorized"
	}
	d := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, k := range rule.keywords {
			if strings.Contains(d, k) {
				return rule.category
			}
		}
	}
	return "Other"
}
