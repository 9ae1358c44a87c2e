package content

import (
	"context"

	"github.com/futig/counsellor-backend/internal/entity"
)

type ScholarshipUsecase interface {
	SearchScholarships(ctx context.Context, query string) ([]entity.Scholarship, error)
}
