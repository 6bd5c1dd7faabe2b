package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"parcel-scheduling-service/internal/api/dto"
	"parcel-scheduling-service/internal/metrics"
	"parcel-scheduling-service/internal/ports"
	"parcel-scheduling-service/internal/services"
	"strings"
)

// ExperimentHandler runs scheduling experiments over repository data.
type ExperimentHandler struct {
	Repo         ports.FleetRepository
	DefaultDepot string
}

// Run loads the fleet, schedules every parcel with the requested
// algorithm, and returns the statistics and the resulting routes. Truck
// state is rebuilt from the repository per request, so runs do not
// interfere with each other.
func (h *ExperimentHandler) Run(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ExperimentRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	depot := strings.TrimSpace(req.Depot)
	if depot == "" {
		depot = strings.TrimSpace(h.DefaultDepot)
	}
	if depot == "" {
		writeError(w, r, http.StatusBadRequest, "depot is required")
		return
	}

	cfg := services.ExperimentConfig{
		Algorithm:   req.Algorithm,
		ParcelOrder: services.ParcelOrder(req.ParcelOrder),
		TruckChoice: services.TruckChoice(req.TruckChoice),
		Depot:       depot,
		Seed:        req.Seed,
	}

	exp, err := services.LoadExperiment(r.Context(), cfg, h.Repo)
	if err != nil {
		// Configuration and data problems are the caller's to fix.
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	report, err := exp.Run(r.Context())
	if err != nil {
		log.Printf("experiment run failed: run_id=%s err=%v", exp.RunID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	metrics.ExperimentsRun.WithLabelValues(cfg.Algorithm).Inc()
	metrics.ParcelsUnscheduled.Add(float64(report.Unscheduled))

	res := dto.ExperimentResponse{
		RunID:        report.RunID,
		Fleet:        report.FleetSize,
		UnusedTrucks: report.UnusedTrucks,
		AvgDistance:  report.AvgDistance,
		AvgFullness:  report.AvgFullness,
		UnusedSpace:  report.UnusedSpace,
		Unscheduled:  make([]int, 0, report.Unscheduled),
		Trucks:       make([]dto.TruckResultResponse, 0, exp.Fleet.NumTrucks()),
	}

	for _, p := range exp.Unscheduled() {
		res.Unscheduled = append(res.Unscheduled, p.ParcelID)
	}

	for _, truck := range exp.Fleet.Trucks {
		ids := make([]int, 0, len(truck.Parcels))
		for _, p := range truck.Parcels {
			ids = append(ids, p.ParcelID)
		}

		// Reported routes include the implicit return leg to the depot.
		route := append([]string(nil), truck.Route...)
		if len(route) > 1 {
			route = append(route, exp.Fleet.Depot)
		}

		res.Trucks = append(res.Trucks, dto.TruckResultResponse{
			TruckID:    truck.TruckID,
			Capacity:   truck.Capacity,
			UsedVolume: truck.UsedVolume(),
			ParcelIDs:  ids,
			Route:      route,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
