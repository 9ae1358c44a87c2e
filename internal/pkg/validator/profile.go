package validator

import (
	"github.com/futig/counsellor-backend/internal/entity"
)

// ValidateProfile validates a profile submission. Field values are never
// rejected; they are coerced later.
func (v *Validator) ValidateProfile(input *entity.ProfileInput) error {
	return v.ValidateEmail(input.Email)
}
