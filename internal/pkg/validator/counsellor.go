package validator

import (
	"fmt"
	"strings"

	"github.com/futig/counsellor-backend/internal/entity"
)

// ValidateChat validates a counsellor chat request
func (v *Validator) ValidateChat(req *entity.ChatRequest) error {
	if strings.TrimSpace(req.UserEmail) == "" {
		return fmt.Errorf("%w: user_email", entity.ErrMissingField)
	}
	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("%w: message", entity.ErrMissingField)
	}
	return nil
}

// ValidateGuidance validates a guidance request
func (v *Validator) ValidateGuidance(req *entity.GuidanceRequest) error {
	universities := 0
	for _, u := range req.Universities {
		if strings.TrimSpace(u) != "" {
			universities++
		}
	}
	if universities == 0 {
		return fmt.Errorf("%w: universities", entity.ErrMissingField)
	}
	if strings.TrimSpace(req.Country) == "" {
		return fmt.Errorf("%w: country", entity.ErrMissingField)
	}
	return nil
}
