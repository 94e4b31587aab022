package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

func init() {
	// Report validation failures by json field name rather than Go field name
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// duplicateField reports whether err is a unique-constraint violation and,
// if so, which wire field collided. SQLite names the offender as
// "UNIQUE constraint failed: table.column"; for composite indexes the owner
// column is skipped so the name column wins.
func duplicateField(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	msg := err.Error()
	const marker = "UNIQUE constraint failed: "
	idx := strings.Index(msg, marker)
	if idx < 0 {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "field", true
		}
		return "", false
	}

	cols := msg[idx+len(marker):]
	if end := strings.IndexAny(cols, "(\n"); end >= 0 {
		cols = cols[:end]
	}
	for _, qualified := range strings.Split(cols, ",") {
		parts := strings.Split(strings.TrimSpace(qualified), ".")
		col := parts[len(parts)-1]
		if col == "id" || col == "user_id" {
			continue
		}
		return snakeToCamel(col), true
	}
	return "field", true
}

func snakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}

// fieldErrors flattens a binding failure into one message per violated field.
func fieldErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "gte":
		return field + " must be at least " + fe.Param()
	case "oneof":
		return field + " must be one of: " + fe.Param()
	default:
		return field + " is invalid"
	}
}
