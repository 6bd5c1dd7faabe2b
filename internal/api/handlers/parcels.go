package handlers

import (
	"log"
	"net/http"
	"parcel-scheduling-service/internal/api/dto"
	"parcel-scheduling-service/internal/ports"
)

// ParcelHandler exposes read-only parcel retrieval endpoints.
type ParcelHandler struct {
	Repo ports.FleetRepository
}

func (h *ParcelHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	parcels, err := h.Repo.ListParcels(r.Context())
	if err != nil {
		log.Printf("list parcels failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListParcelsResponse{
		Parcels: make([]dto.ParcelResponse, 0, len(parcels)),
	}
	for _, p := range parcels {
		res.Parcels = append(res.Parcels, dto.ParcelResponse{
			ParcelID:    p.ParcelID,
			Source:      p.Source,
			Destination: p.Destination,
			Volume:      p.Volume,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
