package university

import (
	"net/http"

	"github.com/futig/counsellor-backend/internal/pkg/logger"
	"github.com/futig/counsellor-backend/internal/pkg/response"
	"github.com/futig/counsellor-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	connector UniversityConnector
	validator *validator.Validator
}

func NewHandler(connector UniversityConnector, validator *validator.Validator) *Handler {
	return &Handler{
		connector: connector,
		validator: validator,
	}
}

// Search handles GET /universities/search?query= - Proxy the university directory
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SearchUniversities")
	query := r.URL.Query().Get("query")

	if err := h.validator.ValidateQuery(query); err != nil {
		ctxzap.Warn(ctx, "invalid query", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	universities, err := h.connector.Search(ctx, query)
	if err != nil {
		ctxzap.Error(ctx, "university search failed", zap.Error(err))
		response.Error(w, http.StatusBadGateway, "university directory is unavailable")
		return
	}

	response.Success(w, universities)
}
