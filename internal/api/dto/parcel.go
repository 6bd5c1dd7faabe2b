package dto

type ParcelResponse struct {
	ParcelID    int    `json:"parcel_id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Volume      int    `json:"volume"`
}

type ListParcelsResponse struct {
	Parcels []ParcelResponse `json:"parcels"`
}
