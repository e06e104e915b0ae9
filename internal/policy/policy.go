// Package policy holds the access rules for the demand board: which sector
// owns which demand field, who may open an editor, and who may switch the
// sector they are viewing.
package policy

import (
	"github.com/ukydev/fleet-demand-ops/internal/models"
)

// fieldOwner maps each editable demand field to the sector that owns it.
// Model and registration are absent on purpose: they are fixed at creation
// and never editable afterwards.
var fieldOwner = map[string]models.Sector{
	models.FieldClientName:        models.SectorLogistics,
	models.FieldProclaim:          models.SectorLogistics,
	models.FieldPostcode:          models.SectorLogistics,
	models.FieldCategory:          models.SectorLogistics,
	models.FieldContract:          models.SectorLogistics,
	models.FieldStatus:            models.SectorLogistics,
	models.FieldHelmet:            models.SectorLogistics,
	models.FieldLicenceType:       models.SectorLogistics,
	models.FieldRoutedDate:        models.SectorLogistics,
	models.FieldConfirmedDate:     models.SectorLogistics,
	models.FieldSwap:              models.SectorLogistics,
	models.FieldVehicleInfo:       models.SectorWorkshop,
	models.FieldWorkshopStatus:    models.SectorWorkshop,
	models.FieldCyrusConfirmation: models.SectorHirefleet,
}

// FieldOwner returns the sector that owns a demand field. The second return
// is false for unknown or never-editable fields.
func FieldOwner(field string) (models.Sector, bool) {
	owner, ok := fieldOwner[field]
	return owner, ok
}

// CanEditField reports whether user, looking at the board of viewed, may
// change the named field. Admins may edit any owned field from any sector;
// everyone else needs their home sector, the owning sector and the viewed
// sector to be one and the same.
func CanEditField(user models.User, viewed models.Sector, field string) bool {
	owner, ok := fieldOwner[field]
	if !ok {
		return false
	}
	if user.Role == models.RoleAdmin {
		return true
	}
	return user.Sector == viewed && owner == viewed
}

// CanMutateTags reports whether tags may be changed from the viewed board.
// Tags belong to whichever sector currently holds the demand.
func CanMutateTags(viewed, current models.Sector) bool {
	return viewed == current
}

// CanOpenEdit reports whether user may open the full editor on the board of
// sector. Admins may everywhere, everyone else only on their home board.
func CanOpenEdit(user models.User, sector models.Sector) bool {
	return user.Role == models.RoleAdmin || user.Sector == sector
}

// CanCreate reports whether user may raise a new demand on the board of
// sector. The rule is the same as for opening the editor.
func CanCreate(user models.User, sector models.Sector) bool {
	return CanOpenEdit(user, sector)
}

// CanHandover reports whether user may move a demand along the pipeline.
// Admins may from anywhere; everyone else must operate the sector the demand
// currently sits in.
func CanHandover(user models.User, current models.Sector) bool {
	return user.Role == models.RoleAdmin || user.Sector == current
}

// CanComplete reports whether user may complete and archive a demand. Same
// rule as for handing over.
func CanComplete(user models.User, current models.Sector) bool {
	return CanHandover(user, current)
}

// CanViewSector reports whether user may read the board of sector. Admins
// and supervisors see every board; plain users are confined to their home
// sector.
func CanViewSector(user models.User, sector models.Sector) bool {
	if user.Role == models.RoleAdmin || user.Role == models.RoleSupervisor {
		return true
	}
	return user.Sector == sector
}

// CanSwitchSector reports whether user may move their view to target.
// Admins switch freely, supervisors need the shared passphrase verified
// (passphraseOK), plain users are confined to their home sector.
func CanSwitchSector(user models.User, target models.Sector, passphraseOK bool) bool {
	switch user.Role {
	case models.RoleAdmin:
		return true
	case models.RoleSupervisor:
		return passphraseOK || target == user.Sector
	default:
		return target == user.Sector
	}
}

// CanManageUsers reports whether user may create accounts.
func CanManageUsers(user models.User) bool {
	return user.Role == models.RoleAdmin
}

// CanManageVehicles reports whether user may add or remove stock vehicles.
func CanManageVehicles(user models.User) bool {
	return user.Role == models.RoleAdmin
}

// CanEditHome reports whether user may rewrite the home page copy.
func CanEditHome(user models.User) bool {
	return user.Role == models.RoleAdmin
}
