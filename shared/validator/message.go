package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const messageSeparator = "; "

var (
	messages = map[string]string{
		"required":        "{field} is required",
		"required_unless": "{field} is required unless {param}",
		"gte":             "{field} must be greater than or equal to {param}",
		"lte":             "{field} must be less than or equal to {param}",
		"oneof":           "{field} must be one of {param}",
		"max":             "{field} must be less than or equal to {param}",
		"min":             "{field} must be greater than or equal to {param}",
		"gt":              "{field} must be greater than {param}",
		"datetime":        "{field} must match the format {param}",
		"dive":            "{field} contains an invalid item",
	}
)

// conditionalParam turns "EventType time_trigger" into "EventType is time_trigger".
func conditionalParam(param string) string {
	field, value, found := strings.Cut(param, " ")
	if !found {
		return param
	}

	return field + " is " + value
}

func fieldMessage(valErr val.FieldError) string {
	tmpl, ok := messages[valErr.Tag()]
	if !ok {
		return valErr.Error()
	}

	param := valErr.Param()
	if valErr.Tag() == "required_unless" {
		param = conditionalParam(param)
	}

	msg := strings.ReplaceAll(tmpl, "{field}", valErr.Field())

	return strings.ReplaceAll(msg, "{param}", param)
}

// message reports every failing field, in struct order, so a client can fix a request in one pass.
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(valErrors))
	for _, valErr := range valErrors {
		msgs = append(msgs, fieldMessage(valErr))
	}

	return strings.Join(msgs, messageSeparator)
}
