package tags

// Strip removes every unsupported tag occurrence from a block.
func Strip(block string) string {
	cleaned, _ := StripReport(block)
	return cleaned
}

// StripReport removes unsupported tags and returns the names of the catalog
// entries that matched, in catalog order. Entries never overlap, so the order
// of removal does not change the result.
func StripReport(block string) (string, []string) {
	var removed []string
	for _, sig := range unsupported {
		if !sig.Pattern.MatchString(block) {
			continue
		}
		removed = append(removed, sig.Name)
		block = sig.Pattern.ReplaceAllLiteralString(block, "")
	}
	return block, removed
}

// MatchesSupported reports whether any supported signature matches block.
func MatchesSupported(block string) bool {
	for _, sig := range supported {
		if sig.Pattern.MatchString(block) {
			return true
		}
	}
	return false
}
