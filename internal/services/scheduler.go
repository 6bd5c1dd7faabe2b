package services

import "parcel-scheduling-service/internal/domain"

// Scheduler decides which parcels go onto which trucks and, through
// packing, what route each truck will take.
//
// Schedule mutates the trucks in place and returns the parcels that
// could not be scheduled onto any truck. An unschedulable parcel is a
// reportable outcome, not a failure: the scheduler skips it and
// continues. The parcel slice itself is never mutated.
type Scheduler interface {
	Schedule(parcels []*domain.Parcel, trucks []*domain.Truck) []*domain.Parcel
}
