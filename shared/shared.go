package shared

import (
	"reflect"

	"adscape/shared/constant"
	"adscape/shared/dto"
	"adscape/shared/timezone"

	"github.com/google/uuid"
)

// CalculateTotalPage never answers 0, an empty listing still has one page.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// TransformFields turns the non-zero db-tagged fields of an update request into column values and
// stamps the modification audit columns. data may be a struct or a pointer to one.
func TransformFields(data any, actor string) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()

	fields := make(map[string]any, typ.NumField()+2)

	for index := range typ.NumField() {
		column := typ.Field(index).Tag.Get("db")
		if column == "" || column == "-" {
			continue
		}

		if field := val.Field(index); !field.IsZero() {
			fields[column] = field.Interface()
		}
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = actor

	return fields
}

// IsValidID reports whether id can identify a row. Every primary key is a UUID.
func IsValidID(id string) bool {
	return uuid.Validate(id) == nil
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
