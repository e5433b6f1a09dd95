package ladder

// ChangedIndex returns the single character position at which a and b
// differ, or -1 when they differ in length, are equal, or differ at more
// than one position. Invalid UTF-8 bytes count as one position each.
func ChangedIndex(a, b string) int {
	sa, sb := spans(a), spans(b)
	if len(sa) != len(sb) {
		return -1
	}
	changed := -1
	for i := range sa {
		if a[sa[i].start:sa[i].end] == b[sb[i].start:sb[i].end] {
			continue
		}
		if changed != -1 {
			return -1
		}
		changed = i
	}
	return changed
}

// Adjacent reports whether a and b are one substitution apart.
func Adjacent(a, b string) bool {
	return ChangedIndex(a, b) != -1
}
