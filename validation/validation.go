package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Báo lỗi theo tên trường trong json tag thay vì tên trường Go
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FieldError mô tả một lỗi validation trên một trường cụ thể
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Validate kiểm tra payload theo schema khai báo trên struct tag.
// Trả về danh sách lỗi theo từng trường, nil nếu payload hợp lệ.
func Validate(payload any) []FieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	valErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Rule: "invalid", Message: err.Error()}}
	}

	details := make([]FieldError, 0, len(valErrs))
	for _, ve := range valErrs {
		details = append(details, FieldError{
			Field:   ve.Field(),
			Rule:    ve.Tag(),
			Message: formatFieldError(ve),
		})
	}
	return details
}

func formatFieldError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", ve.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", ve.Field(), ve.Param())
	default:
		return fmt.Sprintf("%s is invalid", ve.Field())
	}
}
