package content

import (
	"net/http"

	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/futig/counsellor-backend/internal/pkg/logger"
	"github.com/futig/counsellor-backend/internal/pkg/response"
	"github.com/futig/counsellor-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   ScholarshipUsecase
	validator *validator.Validator
}

func NewHandler(usecase ScholarshipUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// SearchScholarships handles GET /content/scholarships?query= - Best-effort scholarship search.
// Internal failures surface as an empty list with status 200.
func (h *Handler) SearchScholarships(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SearchScholarships")
	query := r.URL.Query().Get("query")

	if err := h.validator.ValidateQuery(query); err != nil {
		ctxzap.Warn(ctx, "invalid query", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	scholarships, err := h.usecase.SearchScholarships(ctx, query)
	if err != nil {
		ctxzap.Error(ctx, "scholarship search failed", zap.Error(err))
		response.Success(w, entity.ScholarshipSearchResponse{
			Scholarships: []entity.Scholarship{},
			Error:        "scholarship search is temporarily unavailable",
		})
		return
	}

	response.Success(w, entity.ScholarshipSearchResponse{Scholarships: scholarships})
}
