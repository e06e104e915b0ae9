package models

// Sector is one of the three pipeline stages a demand passes through.
type Sector string

const (
	SectorLogistics Sector = "LOGISTICS"
	SectorWorkshop  Sector = "WORKSHOP"
	SectorHirefleet Sector = "HIREFLEET"
)

// Sectors lists the pipeline stages in flow order.
var Sectors = []Sector{SectorLogistics, SectorWorkshop, SectorHirefleet}

// sectorFlow maps each sector to its forward handover target. HIREFLEET has
// no entry: it is terminal for handover.
var sectorFlow = map[Sector]Sector{
	SectorLogistics: SectorWorkshop,
	SectorWorkshop:  SectorHirefleet,
}

// NextSector returns the forward handover target for a sector. The second
// return value is false when the sector is terminal.
func NextSector(s Sector) (Sector, bool) {
	next, ok := sectorFlow[s]
	return next, ok
}

// IsValidSector checks if a sector value is one of the pipeline stages.
func IsValidSector(s Sector) bool {
	switch s {
	case SectorLogistics, SectorWorkshop, SectorHirefleet:
		return true
	default:
		return false
	}
}
