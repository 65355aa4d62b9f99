package handler

import "net/http"

func (h *Handler) GetAllServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.repository.GetAllServices()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "services fetched", services)
}
