// AngelaMos | 2026
// dedup.go

package category

// Deduplicate removes later records whose trimmed, lowercased name was
// already seen, preserving the input order of survivors. First seen
// wins: a dirty data source with "Maison" followed by "maison " keeps
// only "Maison". The input slice is not modified.
func Deduplicate(categories []Category) []Category {
	seen := make(map[string]struct{}, len(categories))
	result := make([]Category, 0, len(categories))

	for _, c := range categories {
		key := NormalizeName(c.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, c)
	}

	return result
}
