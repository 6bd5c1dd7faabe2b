package domain

// Represents a single parcel awaiting delivery.
// A Parcel is immutable after creation: it is owned by the Fleet's data
// source and referenced by at most one Truck once scheduled.
type Parcel struct {
	ParcelID    int
	Volume      int
	Source      string
	Destination string
}
