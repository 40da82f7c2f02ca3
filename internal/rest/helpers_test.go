package rest

// categoryIndex returns categories keyed by id.
func categoryIndex(ll Categories) map[string]Category {
	r := make(map[string]Category, len(ll))
	for i := range ll {
		r[ll[i].ID] = ll[i]
	}
	return r
}

func questionIDs(ll []Question) []string {
	r := make([]string, len(ll))
	for i := range ll {
		r[i] = ll[i].ID
	}
	return r
}
