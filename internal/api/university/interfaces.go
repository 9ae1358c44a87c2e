package university

import (
	"context"

	"github.com/futig/counsellor-backend/internal/entity"
)

type UniversityConnector interface {
	Search(ctx context.Context, query string) ([]entity.University, error)
}
