package service

import (
	"errors"

	"smarttour/internal/bookings/validator"
	apperrors "smarttour/pkg/errors"
	"smarttour/pkg/model"
)

// canProceed reports whether the wizard may leave its current step. Leaving
// tour selection needs a tour; leaving guest details needs a guest count and
// the lead guest's contact fields. Payment always proceeds.
func canProceed(state model.BookingState) error {
	switch state.CurrentStep {
	case model.StepTourSelection:
		if state.SelectedTour == nil {
			return stepPrecondition("Select a tour before continuing", state.CurrentStep)
		}
	case model.StepGuestDetails:
		if missing := missingGuestFields(state.GuestInfo); len(missing) > 0 {
			return apperrors.PreconditionFailed("Guest details are incomplete", map[string]any{
				"step":    state.CurrentStep.String(),
				"missing": missing,
			})
		}
	}
	return nil
}

func missingGuestFields(info *model.GuestInfo) []string {
	if info == nil {
		return []string{"number_of_guests", "lead_guest.first_name", "lead_guest.last_name", "lead_guest.email", "lead_guest.phone"}
	}

	var missing []string
	if info.NumberOfGuests < 1 {
		missing = append(missing, "number_of_guests")
	}
	required := []struct {
		field string
		value string
	}{
		{"lead_guest.first_name", info.LeadGuest.FirstName},
		{"lead_guest.last_name", info.LeadGuest.LastName},
		{"lead_guest.email", info.LeadGuest.Email},
		{"lead_guest.phone", info.LeadGuest.Phone},
	}
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.field)
		}
	}
	return missing
}

func stepPrecondition(message string, step model.Step) *apperrors.AppError {
	return apperrors.PreconditionFailed(message, map[string]any{
		"step": step.String(),
	})
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation("Validation failed", verrs.Details())
	}
	return apperrors.InvalidInput(err.Error())
}
