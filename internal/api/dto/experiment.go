package dto

type ExperimentRequest struct {
	Algorithm   string `json:"algorithm"`
	ParcelOrder string `json:"parcel_order,omitempty"`
	TruckChoice string `json:"truck_choice,omitempty"`
	Depot       string `json:"depot,omitempty"`
	Seed        *int64 `json:"seed,omitempty"`
}

type TruckResultResponse struct {
	TruckID    int      `json:"truck_id"`
	Capacity   int      `json:"capacity"`
	UsedVolume int      `json:"used_volume"`
	ParcelIDs  []int    `json:"parcel_ids"`
	Route      []string `json:"route"`
}

type ExperimentResponse struct {
	RunID        string                `json:"run_id"`
	Fleet        int                   `json:"fleet"`
	UnusedTrucks int                   `json:"unused_trucks"`
	AvgDistance  float64               `json:"avg_distance"`
	AvgFullness  float64               `json:"avg_fullness"`
	UnusedSpace  int                   `json:"unused_space"`
	Unscheduled  []int                 `json:"unscheduled_parcel_ids"`
	Trucks       []TruckResultResponse `json:"trucks"`
}
