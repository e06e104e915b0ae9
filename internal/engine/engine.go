// Package engine implements the demand lifecycle: creation against the
// vehicle stock, the edit lock, the two-phase handover along the sector
// pipeline and the two-phase completion that archives a demand and puts its
// vehicle on hire.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ukydev/fleet-demand-ops/internal/models"
	"github.com/ukydev/fleet-demand-ops/internal/policy"
	"github.com/ukydev/fleet-demand-ops/internal/recorder"
	"github.com/ukydev/fleet-demand-ops/internal/store"
)

var (
	ErrForbidden           = errors.New("not permitted from this sector")
	ErrValidation          = errors.New("missing required field")
	ErrUnknownRegistration = errors.New("registration not found in vehicle stock")
	ErrVehicleUnavailable  = errors.New("vehicle is not available")
	ErrDemandLocked        = errors.New("demand is locked by another editor")
	ErrNoTransition        = errors.New("demand sector has no forward transition")
	ErrInvalidTarget       = errors.New("handover target does not match the pipeline")
	ErrNotReserved         = errors.New("workshop has not reserved the vehicle")
	ErrAlreadyArchived     = errors.New("demand is already archived")
)

// PendingAction kinds returned by the initiate step of a two-phase flow.
const (
	PendingHandover = "handover"
	PendingComplete = "complete"
)

// PendingAction describes an initiated handover or completion awaiting the
// caller's confirmation. Nothing is mutated until the confirm call.
type PendingAction struct {
	Kind   string             `json:"kind"`
	Demand models.DemandEntry `json:"demand"`
	Target models.Sector      `json:"target,omitempty"`
}

// Engine applies lifecycle operations to the store and records every
// mutation through the recorder.
type Engine struct {
	store *store.Store
	rec   *recorder.Recorder
	log   *logrus.Logger
}

// New creates a lifecycle engine.
func New(st *store.Store, rec *recorder.Recorder, log *logrus.Logger) *Engine {
	return &Engine{store: st, rec: rec, log: log}
}

// Create validates the form against the vehicle stock and inserts a new
// demand into the viewed sector. The model is taken from the stock entry,
// never from the form; the reference id mirrors the proclaim number.
func (e *Engine) Create(actor models.User, viewed models.Sector, form models.CreateDemandForm) (models.DemandEntry, error) {
	if !policy.CanCreate(actor, viewed) {
		return models.DemandEntry{}, ErrForbidden
	}
	if form.ClientName == "" || form.Proclaim == "" || form.Postcode == "" {
		return models.DemandEntry{}, ErrValidation
	}

	vehicle, ok := e.store.VehicleByRegistration(form.Registration)
	if !ok {
		return models.DemandEntry{}, ErrUnknownRegistration
	}
	// The workshop board picks from the whole stock; everyone else only
	// from vehicles currently available.
	if viewed != models.SectorWorkshop && vehicle.Status != models.VehicleAvailable {
		return models.DemandEntry{}, ErrVehicleUnavailable
	}

	cyrus := form.CyrusConfirmation
	if cyrus == "" {
		cyrus = models.CyrusNo
	}
	now := time.Now()
	d := e.store.InsertDemand(models.DemandEntry{
		ClientName:        form.ClientName,
		Proclaim:          form.Proclaim,
		Postcode:          form.Postcode,
		Model:             vehicle.Model,
		Registration:      vehicle.Registration,
		Category:          form.Category,
		Contract:          form.Contract,
		Status:            form.Status,
		Helmet:            form.Helmet,
		LicenceType:       form.LicenceType,
		RoutedDate:        form.RoutedDate,
		ConfirmedDate:     form.ConfirmedDate,
		Swap:              form.Swap,
		VehicleInfo:       form.VehicleInfo,
		CyrusConfirmation: cyrus,
		ReferenceID:       form.Proclaim,
		Group:             now.Format(models.GroupLayout),
		LastModifiedBy:    actor.Name,
		LastModifiedAt:    now.Format(models.ModifiedAtLayout),
		Tags:              form.Tags,
		CurrentSector:     viewed,
	})

	e.rec.Audit(d, models.ActionCreate, "Created new demand.", actor.Name)
	e.rec.Notify(fmt.Sprintf("New demand created for %s.", d.ClientName))
	return d, nil
}

// LockForEdit claims the edit lock on a demand. The lock is advisory and
// not re-entrant: a second claim fails even for the current holder.
func (e *Engine) LockForEdit(actor models.User, viewed models.Sector, id int64) (models.DemandEntry, error) {
	if !policy.CanOpenEdit(actor, viewed) {
		return models.DemandEntry{}, ErrForbidden
	}
	return e.store.UpdateDemand(id, func(d *models.DemandEntry) error {
		if err := editable(d, actor, viewed); err != nil {
			return err
		}
		if d.LockedBy != "" {
			return ErrDemandLocked
		}
		d.LockedBy = actor.Name
		return nil
	})
}

// SaveEdit merges a partial update into a demand, dropping every field the
// actor's sector does not own, then releases the edit lock. A demand that
// has vanished is a silent no-op: the save is simply lost.
func (e *Engine) SaveEdit(actor models.User, viewed models.Sector, id int64, upd models.DemandUpdate) (models.DemandEntry, error) {
	d, err := e.store.UpdateDemand(id, func(d *models.DemandEntry) error {
		if err := editable(d, actor, viewed); err != nil {
			return err
		}
		applyUpdate(d, upd, actor, viewed)
		d.LockedBy = ""
		d.LastModifiedBy = actor.Name
		d.LastModifiedAt = time.Now().Format(models.ModifiedAtLayout)
		return nil
	})
	if errors.Is(err, store.ErrDemandNotFound) {
		return models.DemandEntry{}, nil
	}
	if err != nil {
		return models.DemandEntry{}, err
	}
	e.rec.Audit(d, models.ActionUpdate, "Updated demand details.", actor.Name)
	e.rec.Notify(fmt.Sprintf("Demand #%s updated.", d.Proclaim))
	return d, nil
}

// CancelEdit releases the edit lock if the actor holds it. Anyone else's
// lock, or a vanished demand, is left untouched.
func (e *Engine) CancelEdit(actor models.User, id int64) {
	_, err := e.store.UpdateDemand(id, func(d *models.DemandEntry) error {
		if d.LockedBy == actor.Name {
			d.LockedBy = ""
		}
		return nil
	})
	if err != nil && !errors.Is(err, store.ErrDemandNotFound) {
		e.log.WithError(err).WithField("demand_id", id).Warn("Cancel edit failed")
	}
}

// InitiateHandover checks that a demand can move forward and returns the
// pending action naming the target sector. Nothing is mutated yet.
func (e *Engine) InitiateHandover(actor models.User, id int64) (PendingAction, error) {
	d, ok := e.store.DemandByID(id)
	if !ok {
		return PendingAction{}, store.ErrDemandNotFound
	}
	if !policy.CanHandover(actor, d.CurrentSector) {
		return PendingAction{}, ErrForbidden
	}
	if d.IsArchived {
		return PendingAction{}, ErrAlreadyArchived
	}
	next, ok := models.NextSector(d.CurrentSector)
	if !ok {
		return PendingAction{}, ErrNoTransition
	}
	return PendingAction{Kind: PendingHandover, Demand: d, Target: next}, nil
}

// ConfirmHandover moves a demand to the target sector. The target is
// re-validated against the pipeline under the store lock, so a demand that
// moved between initiate and confirm fails rather than skipping a stage.
func (e *Engine) ConfirmHandover(actor models.User, id int64, target models.Sector) (models.DemandEntry, error) {
	var from models.Sector
	d, err := e.store.UpdateDemand(id, func(d *models.DemandEntry) error {
		if !policy.CanHandover(actor, d.CurrentSector) {
			return ErrForbidden
		}
		if d.IsArchived {
			return ErrAlreadyArchived
		}
		next, ok := models.NextSector(d.CurrentSector)
		if !ok {
			return ErrNoTransition
		}
		if target != next {
			return ErrInvalidTarget
		}
		from = d.CurrentSector
		d.CurrentSector = target
		d.LockedBy = ""
		d.LastModifiedBy = actor.Name
		d.LastModifiedAt = time.Now().Format(models.ModifiedAtLayout)
		return nil
	})
	if err != nil {
		return models.DemandEntry{}, err
	}
	e.rec.Audit(d, models.ActionHandover, fmt.Sprintf("Demand passed from %s to %s.", from, target), actor.Name)
	e.rec.Notify(fmt.Sprintf("Demand for %s handed over to %s.", d.ClientName, target))
	return d, nil
}

// InitiateCompletion checks that a demand is ready to be completed: not yet
// archived, and with the vehicle reserved by the workshop.
func (e *Engine) InitiateCompletion(actor models.User, id int64) (PendingAction, error) {
	d, ok := e.store.DemandByID(id)
	if !ok {
		return PendingAction{}, store.ErrDemandNotFound
	}
	if !policy.CanComplete(actor, d.CurrentSector) {
		return PendingAction{}, ErrForbidden
	}
	if d.IsArchived {
		return PendingAction{}, ErrAlreadyArchived
	}
	if d.WorkshopStatus != models.WorkshopReserved {
		return PendingAction{}, ErrNotReserved
	}
	return PendingAction{Kind: PendingComplete, Demand: d}, nil
}

// ConfirmCompletion archives the demand and, in the same store transaction,
// puts the vehicle with the demand's registration on hire. The reservation
// precondition is re-checked under the lock.
func (e *Engine) ConfirmCompletion(actor models.User, id int64) (models.DemandEntry, error) {
	d, vehicleUpdated, err := e.store.CompleteDemand(id, func(d *models.DemandEntry) error {
		if !policy.CanComplete(actor, d.CurrentSector) {
			return ErrForbidden
		}
		if d.IsArchived {
			return ErrAlreadyArchived
		}
		if d.WorkshopStatus != models.WorkshopReserved {
			return ErrNotReserved
		}
		d.Status = models.StatusCompleted
		d.IsArchived = true
		d.CompletedAt = time.Now().Format(models.DateLayout)
		d.LockedBy = ""
		d.LastModifiedBy = actor.Name
		d.LastModifiedAt = time.Now().Format(models.ModifiedAtLayout)
		return nil
	})
	if err != nil {
		return models.DemandEntry{}, err
	}
	e.rec.Audit(d, models.ActionComplete, "Demand completed and archived.", actor.Name)
	e.rec.Notify(fmt.Sprintf("Demand for %s completed.", d.ClientName))
	if !vehicleUpdated {
		e.log.WithFields(logrus.Fields{
			"demand_id":    d.ID,
			"registration": d.Registration,
		}).Warn("Completed demand has no matching stock vehicle")
	}
	return d, nil
}

// QuickEditField changes a single field in place, bypassing the edit lock.
// A concurrent full edit can overwrite the change when it saves; the quick
// path trades that window for not blocking the board. A vanished demand is
// a silent no-op.
func (e *Engine) QuickEditField(actor models.User, viewed models.Sector, id int64, field, value string) (models.DemandEntry, error) {
	if !policy.CanEditField(actor, viewed, field) {
		return models.DemandEntry{}, ErrForbidden
	}
	d, err := e.store.UpdateDemand(id, func(d *models.DemandEntry) error {
		if err := editable(d, actor, viewed); err != nil {
			return err
		}
		if err := setField(d, field, value); err != nil {
			return err
		}
		d.LastModifiedBy = actor.Name
		d.LastModifiedAt = time.Now().Format(models.ModifiedAtLayout)
		return nil
	})
	if errors.Is(err, store.ErrDemandNotFound) {
		return models.DemandEntry{}, nil
	}
	if err != nil {
		return models.DemandEntry{}, err
	}
	e.rec.Audit(d, models.ActionQuickEdit, fmt.Sprintf("Field '%s' changed to '%s'.", field, value), actor.Name)
	return d, nil
}

// AssignUser sets or clears (userID zero) the demand's assignee. A vanished
// demand is a silent no-op.
func (e *Engine) AssignUser(actor models.User, id int64, userID int64) (models.DemandEntry, error) {
	details := "Unassigned from user."
	if userID != 0 {
		target, ok := e.store.UserByID(userID)
		if !ok {
			return models.DemandEntry{}, store.ErrUserNotFound
		}
		details = fmt.Sprintf("Assigned to %s.", target.Name)
	}
	d, err := e.store.UpdateDemand(id, func(d *models.DemandEntry) error {
		if d.IsArchived {
			return ErrAlreadyArchived
		}
		d.AssignedTo = userID
		return nil
	})
	if errors.Is(err, store.ErrDemandNotFound) {
		return models.DemandEntry{}, nil
	}
	if err != nil {
		return models.DemandEntry{}, err
	}
	e.rec.Audit(d, models.ActionAssignment, details, actor.Name)
	return d, nil
}

// editable refuses edits on archived demands and, for non-admins, on demands
// that have moved on from the viewed board.
func editable(d *models.DemandEntry, actor models.User, viewed models.Sector) error {
	if d.IsArchived {
		return ErrAlreadyArchived
	}
	if actor.Role != models.RoleAdmin && d.CurrentSector != viewed {
		return ErrForbidden
	}
	return nil
}

// applyUpdate copies the non-nil update fields the actor is allowed to edit
// onto the demand. Disallowed fields are dropped without error.
func applyUpdate(d *models.DemandEntry, upd models.DemandUpdate, actor models.User, viewed models.Sector) {
	allowed := func(field string) bool { return policy.CanEditField(actor, viewed, field) }

	if upd.ClientName != nil && allowed(models.FieldClientName) {
		d.ClientName = *upd.ClientName
	}
	if upd.Proclaim != nil && allowed(models.FieldProclaim) {
		d.Proclaim = *upd.Proclaim
	}
	if upd.Postcode != nil && allowed(models.FieldPostcode) {
		d.Postcode = *upd.Postcode
	}
	if upd.Category != nil && allowed(models.FieldCategory) {
		d.Category = *upd.Category
	}
	if upd.Contract != nil && allowed(models.FieldContract) {
		d.Contract = *upd.Contract
	}
	if upd.Status != nil && allowed(models.FieldStatus) {
		d.Status = *upd.Status
	}
	if upd.Helmet != nil && allowed(models.FieldHelmet) {
		d.Helmet = *upd.Helmet
	}
	if upd.LicenceType != nil && allowed(models.FieldLicenceType) {
		d.LicenceType = *upd.LicenceType
	}
	if upd.RoutedDate != nil && allowed(models.FieldRoutedDate) {
		d.RoutedDate = *upd.RoutedDate
	}
	if upd.ConfirmedDate != nil && allowed(models.FieldConfirmedDate) {
		d.ConfirmedDate = *upd.ConfirmedDate
	}
	if upd.Swap != nil && allowed(models.FieldSwap) {
		d.Swap = *upd.Swap
	}
	if upd.VehicleInfo != nil && allowed(models.FieldVehicleInfo) {
		d.VehicleInfo = *upd.VehicleInfo
	}
	if upd.WorkshopStatus != nil && allowed(models.FieldWorkshopStatus) {
		d.WorkshopStatus = *upd.WorkshopStatus
	}
	if upd.CyrusConfirmation != nil && allowed(models.FieldCyrusConfirmation) {
		d.CyrusConfirmation = *upd.CyrusConfirmation
	}
	if upd.Tags != nil && policy.CanMutateTags(viewed, d.CurrentSector) {
		d.Tags = append([]models.Tag(nil), (*upd.Tags)...)
	}
}

// setField writes one named field from its string form.
func setField(d *models.DemandEntry, field, value string) error {
	switch field {
	case models.FieldClientName:
		d.ClientName = value
	case models.FieldProclaim:
		d.Proclaim = value
	case models.FieldPostcode:
		d.Postcode = value
	case models.FieldCategory:
		d.Category = value
	case models.FieldContract:
		d.Contract = value
	case models.FieldStatus:
		d.Status = models.DemandStatus(value)
	case models.FieldHelmet:
		d.Helmet = value
	case models.FieldLicenceType:
		d.LicenceType = models.LicenceType(value)
	case models.FieldRoutedDate:
		d.RoutedDate = value
	case models.FieldConfirmedDate:
		d.ConfirmedDate = value
	case models.FieldSwap:
		d.Swap = value
	case models.FieldVehicleInfo:
		d.VehicleInfo = value
	case models.FieldWorkshopStatus:
		d.WorkshopStatus = models.WorkshopStatus(value)
	case models.FieldCyrusConfirmation:
		d.CyrusConfirmation = models.CyrusConfirmation(value)
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}
