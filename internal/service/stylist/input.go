package stylist

import (
	"strings"

	"github.com/google/uuid"

	"github.com/closetmate/closetmate/internal/domain"
)

// StyleInput is one style-advice request.
type StyleInput struct {
	ProfileID uuid.UUID
	Occasion  string
	City      string
}

// normalize validates the input and fills defaults. A blank occasion is
// rejected before any collaborator is touched.
func (s *Service) normalize(in StyleInput) (StyleInput, error) {
	in.Occasion = strings.TrimSpace(in.Occasion)
	if in.Occasion == "" {
		return StyleInput{}, domain.NewValidationError("occasion", "must not be empty")
	}

	in.City = strings.TrimSpace(in.City)
	if in.City == "" {
		in.City = s.cfg.DefaultCity
	}

	return in, nil
}
