package utils

import "strings"

// InSlice - checks whether param exists in array slice
func InSlice(param string, array []string) bool {

	for i := range array {

		if param == array[i] {
			return true
		}
	}
	return false
}

// Compact - drops blanks and duplicates, keeping order
func Compact(s []string) []string {

	var (
		check = make(map[string]bool)
		res   = make([]string, 0, len(s))
	)

	for _, val := range s {

		val = strings.TrimSpace(val)

		if val == "" || check[val] {
			continue
		}

		check[val] = true
		res = append(res, val)
	}

	return res
}
