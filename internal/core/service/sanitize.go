package service

import "github.com/microcosm-cc/bluemonday"

// Rich-text fields (long descriptions) keep safe user-generated markup;
// everything else shown back to browsers is stripped to plain text.
var (
	richTextPolicy  = bluemonday.UGCPolicy()
	plainTextPolicy = bluemonday.StrictPolicy()
)

func sanitizeRich(s string) string {
	return richTextPolicy.Sanitize(s)
}

func sanitizePlain(s string) string {
	return plainTextPolicy.Sanitize(s)
}
