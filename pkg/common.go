package pkg

import "strings"

// Parse splits an image reference into name and tag, defaulting the tag
// to "latest". Returns empty strings for references it cannot split.
func Parse(input string) (string, string) {
	s := strings.Split(input, ":")
	if len(s) == 1 {
		return s[0], "latest"
	}
	if len(s) == 2 {
		return s[0], s[1]
	}
	return "", ""
}

// Join is the inverse of Parse.
func Join(name, tag string) string {
	if tag == "" {
		tag = "latest"
	}
	return name + ":" + tag
}
