package domain

import "strings"

// FilterCorrespondences keeps, in their original order, the items whose subject,
// reference number or responsible engineer contains query, ignoring case.
// An empty query keeps everything.
func FilterCorrespondences(items []Correspondence, query string) []Correspondence {
	needle := strings.ToLower(query)
	result := make([]Correspondence, 0, len(items))
	for _, item := range items {
		if matchesQuery(item, needle) {
			result = append(result, item)
		}
	}

	return result
}

func matchesQuery(item Correspondence, needle string) bool {
	if needle == "" {
		return true
	}

	for _, field := range []string{item.Subject, item.ReferenceNumber, item.ResponsibleEngineer} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}
