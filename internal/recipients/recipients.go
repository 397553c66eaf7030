// Package recipients is the serialization boundary for recipient lists.
//
// Both email_logs and scheduled_jobs store their recipient list as a single
// comma-delimited column; Encode and Decode are the only two places that know
// about the delimiter, and Decode(Encode(list)) reproduces the original list.
package recipients

import "strings"

const delimiter = ", "

// Encode joins an ordered recipient list into the delimited column form.
func Encode(list []string) string {
	return strings.Join(list, delimiter)
}

// Decode splits the delimited column form back into an ordered list,
// trimming whitespace and dropping empty entries.
func Decode(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}

	return list
}

// Normalize trims every entry, drops empties and removes duplicates while
// preserving first-occurrence order. It is applied to every incoming
// recipient list before any row is created.
func Normalize(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))

	for _, r := range list {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}

		seen[r] = struct{}{}
		out = append(out, r)
	}

	return out
}
