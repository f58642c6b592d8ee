package common

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
)

func ToSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TableName derives the collection name for a model: snake-cased and
// pluralized, so "Car" lands in "cars" and "AuditLog" would land in
// "audit_logs".
func TableName(modelName string) string {
	return inflection.Plural(ToSnakeCase(modelName))
}
