package extraction

import (
	"context"

	"github.com/futig/counsellor-backend/internal/entity"
)

type Completer interface {
	Complete(ctx context.Context, req *entity.CompletionRequest) (string, error)
}
