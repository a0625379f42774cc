package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"smarttour/pkg/logger"
	"smarttour/pkg/model"

	"github.com/go-playground/validator/v10"
)

// MaxItems caps the size of a single wishlist.
const MaxItems = 200

// Ids travel as single URL path segments, so they are limited to letters,
// digits, '-' and '_'.
var reURLSafeID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func IsURLSafeID(id string) bool {
	return reURLSafeID.MatchString(id)
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

func (v ValidationErrors) Details() map[string]any {
	details := make(map[string]any, len(v))
	for _, err := range v {
		details[err.Field] = err.Message
	}
	return details
}

type WishlistValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewWishlistValidator(log *logger.Logger) *WishlistValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("priority", validatePriority); err != nil {
		log.Fatal("Failed to register 'priority' validator",
			"error", err,
		)
	}

	if err := v.RegisterValidation("url_safe_id", func(fl validator.FieldLevel) bool {
		return IsURLSafeID(fl.Field().String())
	}); err != nil {
		log.Fatal("Failed to register 'url_safe_id' validator",
			"error", err,
		)
	}

	log.Info("Wishlist validator initialized successfully")

	return &WishlistValidator{
		validate: v,
		logger:   log,
	}
}

func validatePriority(fl validator.FieldLevel) bool {
	return model.Priority(fl.Field().String()).Valid()
}

func (v *WishlistValidator) ValidateItem(item *model.WishlistItem) error {
	if err := v.validate.Struct(item); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs, "")
		}
		return err
	}
	return nil
}

// ValidateItems validates every item and rejects repeated ids. Field names are
// prefixed with the item index, e.g. "items[2].priority".
func (v *WishlistValidator) ValidateItems(items []model.WishlistItem) error {
	if len(items) > MaxItems {
		return ValidationErrors{{
			Field:   "items",
			Message: fmt.Sprintf("items must contain at most %d entries", MaxItems),
		}}
	}

	var all ValidationErrors
	seen := make(map[string]bool, len(items))
	for i := range items {
		prefix := fmt.Sprintf("items[%d].", i)
		if err := v.validate.Struct(&items[i]); err != nil {
			var validationErrs validator.ValidationErrors
			if !errors.As(err, &validationErrs) {
				return err
			}
			all = append(all, v.translateValidationErrors(validationErrs, prefix)...)
		}
		if id := items[i].ID; id != "" {
			if seen[id] {
				all = append(all, ValidationError{
					Field:   prefix + "id",
					Message: fmt.Sprintf("id %q is used by more than one item", id),
				})
			}
			seen[id] = true
		}
	}

	if len(all) > 0 {
		return all
	}
	return nil
}

func (v *WishlistValidator) ValidatePriorityUpdate(update *model.PriorityUpdate) error {
	if err := v.validate.Struct(update); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs, "")
		}
		return err
	}
	return nil
}

func (v *WishlistValidator) translateValidationErrors(errs validator.ValidationErrors, prefix string) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		field := prefix + err.Field()
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s", field, err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", field, err.Param())
		case "gte":
			message = fmt.Sprintf("%s must be greater than or equal to %s", field, err.Param())
		case "priority":
			message = fmt.Sprintf("%s must be one of: low, medium, high", field)
		case "url_safe_id":
			message = fmt.Sprintf("%s may only contain letters, digits, '-' and '_'", field)
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   field,
			Message: message,
		})
	}

	return validationErrors
}
