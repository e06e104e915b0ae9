package models

// DemandStatus is the free status flag shown on the demand board. COMPLETED
// is set by the lifecycle engine when a demand is archived.
type DemandStatus string

const (
	StatusPizza     DemandStatus = "PIZZA"
	StatusLock      DemandStatus = "LOCK"
	StatusCompleted DemandStatus = "COMPLETED"
	StatusNone      DemandStatus = ""
)

// LicenceType is the client's driving licence category.
type LicenceType string

const (
	LicenceEuro LicenceType = "EURO"
	LicenceCBT  LicenceType = "CBT"
	LicenceFull LicenceType = "FULL"
)

// CyrusConfirmation is the Hirefleet-stage external confirmation flag.
type CyrusConfirmation string

const (
	CyrusYes CyrusConfirmation = "YES"
	CyrusNo  CyrusConfirmation = "NO"
)

// WorkshopStatus marks whether the workshop has reserved the vehicle for
// this demand. RESERVED is the precondition for completion.
type WorkshopStatus string

const (
	WorkshopReserved WorkshopStatus = "RESERVED"
	WorkshopNone     WorkshopStatus = ""
)

// TagType is the severity of a free-form demand tag.
type TagType string

const (
	TagNormal    TagType = "normal"
	TagImportant TagType = "important"
	TagUrgent    TagType = "urgent"
)

// Tag is a free-form annotation attached to a demand.
type Tag struct {
	Text string  `json:"text"`
	Type TagType `json:"type"`
}

// Timestamp layouts used across the demand pipeline.
const (
	ModifiedAtLayout = "2006-01-02 15:04"
	DateLayout       = "2006-01-02"
	ClockLayout      = "15:04"
	GroupLayout      = "Monday 02/01"
)

// DemandEntry is one client vehicle-movement request travelling through the
// pipeline LOGISTICS -> WORKSHOP -> HIREFLEET.
type DemandEntry struct {
	ID                int64             `json:"id"`
	ClientName        string            `json:"clientName"`
	Proclaim          string            `json:"proclaim"`
	Postcode          string            `json:"postcode"`
	Model             string            `json:"model"`
	Category          string            `json:"category"`
	Contract          string            `json:"contract"`
	Status            DemandStatus      `json:"status"`
	Helmet            string            `json:"helmet,omitempty"`
	LicenceType       LicenceType       `json:"licenceType"`
	RoutedDate        string            `json:"routedDate,omitempty"`
	ConfirmedDate     string            `json:"confirmedDate,omitempty"`
	Swap              string            `json:"swap"`
	VehicleInfo       string            `json:"vehicleInfo"`
	Registration      string            `json:"registration"`
	CyrusConfirmation CyrusConfirmation `json:"cyrusConfirmation"`
	ReferenceID       string            `json:"referenceId"`
	Group             string            `json:"group,omitempty"`
	LastModifiedBy    string            `json:"lastModifiedBy"`
	LastModifiedAt    string            `json:"lastModifiedAt"`
	Tags              []Tag             `json:"tags,omitempty"`
	CurrentSector     Sector            `json:"currentSector"`
	LockedBy          string            `json:"lockedBy,omitempty"`
	IsArchived        bool              `json:"isArchived,omitempty"`
	CompletedAt       string            `json:"completedAt,omitempty"`
	WorkshopStatus    WorkshopStatus    `json:"workshopStatus"`
	AssignedTo        int64             `json:"assignedTo,omitempty"`
}

// CreateDemandForm carries the creation-time payload. Model and registration
// must resolve against the vehicle stock; everything else is free text.
type CreateDemandForm struct {
	ClientName        string            `json:"clientName"`
	Proclaim          string            `json:"proclaim"`
	Postcode          string            `json:"postcode"`
	Model             string            `json:"model"`
	Registration      string            `json:"registration"`
	Category          string            `json:"category"`
	Contract          string            `json:"contract"`
	Status            DemandStatus      `json:"status"`
	Helmet            string            `json:"helmet"`
	LicenceType       LicenceType       `json:"licenceType"`
	RoutedDate        string            `json:"routedDate"`
	ConfirmedDate     string            `json:"confirmedDate"`
	Swap              string            `json:"swap"`
	VehicleInfo       string            `json:"vehicleInfo"`
	CyrusConfirmation CyrusConfirmation `json:"cyrusConfirmation"`
	Tags              []Tag             `json:"tags"`
}

// DemandUpdate is a partial edit of a demand. Nil fields are left untouched;
// the engine additionally drops fields the acting user may not edit.
type DemandUpdate struct {
	ClientName        *string            `json:"clientName,omitempty"`
	Proclaim          *string            `json:"proclaim,omitempty"`
	Postcode          *string            `json:"postcode,omitempty"`
	Category          *string            `json:"category,omitempty"`
	Contract          *string            `json:"contract,omitempty"`
	Status            *DemandStatus      `json:"status,omitempty"`
	Helmet            *string            `json:"helmet,omitempty"`
	LicenceType       *LicenceType       `json:"licenceType,omitempty"`
	RoutedDate        *string            `json:"routedDate,omitempty"`
	ConfirmedDate     *string            `json:"confirmedDate,omitempty"`
	Swap              *string            `json:"swap,omitempty"`
	VehicleInfo       *string            `json:"vehicleInfo,omitempty"`
	WorkshopStatus    *WorkshopStatus    `json:"workshopStatus,omitempty"`
	CyrusConfirmation *CyrusConfirmation `json:"cyrusConfirmation,omitempty"`
	Tags              *[]Tag             `json:"tags,omitempty"`
}

// Demand field names as used by quick edits and the field-ownership policy.
// They match the JSON keys of DemandEntry.
const (
	FieldClientName        = "clientName"
	FieldProclaim          = "proclaim"
	FieldPostcode          = "postcode"
	FieldCategory          = "category"
	FieldContract          = "contract"
	FieldStatus            = "status"
	FieldHelmet            = "helmet"
	FieldLicenceType       = "licenceType"
	FieldRoutedDate        = "routedDate"
	FieldConfirmedDate     = "confirmedDate"
	FieldSwap              = "swap"
	FieldVehicleInfo       = "vehicleInfo"
	FieldWorkshopStatus    = "workshopStatus"
	FieldCyrusConfirmation = "cyrusConfirmation"
)
