package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jridouane/vite-gourmand/models"
	"gorm.io/gorm"
)

var (
	ErrFieldNotAllowed = errors.New("field not allowed")
	ErrInvalidValue    = errors.New("invalid value")
)

// ValidationError wraps the first entity constraint violation so the HTTP
// layer can answer 422 instead of 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var profileFields = map[string]bool{
	"firstName":    true,
	"lastName":     true,
	"phone":        true,
	"addressLine1": true,
	"addressLine2": true,
	"postalCode":   true,
	"city":         true,
	"country":      true,
}

var validate = validator.New()

// UpdateProfileField applies a single {field, value} patch to a user profile.
// Two independent gates guard the write: the field allow-list, then a
// whole-entity validation after the value has been applied. Nothing is
// persisted unless both pass.
func UpdateProfileField(db *gorm.DB, user *models.User, field string, value interface{}) (interface{}, error) {
	if !profileFields[field] {
		return nil, ErrFieldNotAllowed
	}

	var normalized interface{}
	if field == "postalCode" {
		code, err := normalizePostalCode(value)
		if err != nil {
			return nil, err
		}
		user.PostalCode = code
		if code != nil {
			normalized = *code
		}
	} else {
		str, err := normalizeString(value)
		if err != nil {
			return nil, err
		}
		switch field {
		case "firstName":
			user.FirstName = str
		case "lastName":
			user.LastName = str
		case "phone":
			user.Phone = str
		case "addressLine1":
			user.AddressLine1 = str
		case "addressLine2":
			user.AddressLine2 = str
		case "city":
			user.City = str
		case "country":
			user.Country = str
		}
		if str != nil {
			normalized = *str
		}
	}

	user.UpdatedAt = time.Now()

	if err := validate.Struct(user); err != nil {
		var violations validator.ValidationErrors
		if errors.As(err, &violations) && len(violations) > 0 {
			return nil, &ValidationError{Message: violationMessage(violations[0])}
		}
		return nil, err
	}

	if err := db.Save(user).Error; err != nil {
		return nil, err
	}

	return normalized, nil
}

// empty string and nil both mean "clear the field"
func normalizePostalCode(value interface{}) (*int, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		code, _ := strconv.Atoi(strings.TrimSpace(v))
		return &code, nil
	case float64:
		code := int(v)
		return &code, nil
	case int:
		code := v
		return &code, nil
	default:
		return nil, ErrInvalidValue
	}
}

func normalizeString(value interface{}) (*string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil, nil
		}
		return &trimmed, nil
	default:
		return nil, ErrInvalidValue
	}
}

func violationMessage(v validator.FieldError) string {
	switch v.Tag() {
	case "max":
		return fmt.Sprintf("%s is too long (%s characters max)", v.Field(), v.Param())
	case "email":
		return fmt.Sprintf("%s is not a valid email address", v.Field())
	default:
		return fmt.Sprintf("%s is invalid", v.Field())
	}
}
