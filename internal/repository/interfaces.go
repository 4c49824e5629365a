package repository

import (
	"context"

	"github.com/jwalitptl/receptionist-dashboard/internal/model"
)

// CallRepository reads call records from the relational store.
type CallRepository interface {
	List(ctx context.Context) ([]*model.Call, error)
	Get(ctx context.Context, id int64) (*model.Call, error)
}

// ScheduleStore reads clinic and appointment rows from the scheduling
// spreadsheet. AppointmentsForClinic exists so aggregation code queries by
// predicate instead of scanning whole tabs itself.
type ScheduleStore interface {
	Clinics(ctx context.Context) ([]*model.Clinic, error)
	Appointments(ctx context.Context) ([]*model.Appointment, error)
	AppointmentsForClinic(ctx context.Context, clinicID, datePrefix string) ([]*model.Appointment, error)
	CallLog(ctx context.Context) ([]*model.Call, error)
}
