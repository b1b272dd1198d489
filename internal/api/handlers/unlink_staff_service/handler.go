package unlink_staff_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlebedev/SLB-BookingEngine/internal/api/handlers"
	"github.com/avlebedev/SLB-BookingEngine/internal/api/middleware"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/business"
	"github.com/avlebedev/SLB-BookingEngine/internal/service/catalog"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidLinkID     = "некорректный ID привязки"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgLinkNotFound      = "привязка не найдена"
)

type Handler struct {
	service CatalogService
	access  AccessChecker
	logger  Logger
}

func NewHandler(service CatalogService, access AccessChecker, logger Logger) *Handler {
	return &Handler{
		service: service,
		access:  access,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/businesses/{businessId}/staff-services/{linkId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/staff-services/{linkId} - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	linkID, err := strconv.ParseInt(vars["linkId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/staff-services/{linkId} - Invalid link ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLinkID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /businesses/{id}/staff-services/{linkId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.access.CheckAccess(r.Context(), userID, businessID); err != nil {
		if errors.Is(err, business.ErrAccessDenied) {
			h.logger.Warn("DELETE /businesses/{id}/staff-services/{linkId} - Access denied: business_id=%d, user_id=%d", businessID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("DELETE /businesses/{id}/staff-services/{linkId} - Failed to check access: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := h.service.UnlinkStaffService(r.Context(), businessID, linkID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrLinkNotFound):
			h.logger.Warn("DELETE /businesses/{id}/staff-services/{linkId} - Link not found: link_id=%d, business_id=%d", linkID, businessID)
			handlers.RespondNotFound(w, msgLinkNotFound)

		default:
			h.logger.Error("DELETE /businesses/{id}/staff-services/{linkId} - Failed to unlink staff from service: link_id=%d, error=%v", linkID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /businesses/{id}/staff-services/{linkId} - Staff unlinked from service successfully: link_id=%d, business_id=%d",
		linkID, businessID)
	w.WriteHeader(http.StatusNoContent)
}
