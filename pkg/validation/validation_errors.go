package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps wire field names to the French labels shown on the storefront
var FieldLabels = map[string]string{
	"formData":             "Informations client",
	"orderSummary":         "Récapitulatif de commande",
	"name":                 "Nom",
	"email":                "E-mail",
	"phone":                "Téléphone",
	"subject":              "Sujet",
	"message":              "Message",
	"postalCode":           "Code postal",
	"address":              "Adresse",
	"manufacturingProcess": "Type d'enseigne",
	"details":              "Détails de la configuration",
}

// MissingFields lists the wire names of fields that failed validation, in
// struct order. Non-validation errors yield nil.
func MissingFields(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, e.Field())
	}
	return fields
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := FieldLabel(e.Field())

	switch e.Tag() {
	case "required", "notblank":
		return RequiredMessage(e.Field())
	case "email":
		return fmt.Sprintf("%s : format d'e-mail invalide", label)
	default:
		return fmt.Sprintf("%s : valeur invalide (%s)", label, e.Tag())
	}
}

// RequiredMessage is the message for a required field left empty.
func RequiredMessage(fieldName string) string {
	return fmt.Sprintf("%s : champ obligatoire", FieldLabel(fieldName))
}

// FieldLabel returns the user-friendly label for a field
func FieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts camelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
