package store

import (
	"github.com/ukydev/fleet-demand-ops/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Seed builds a store populated with the demo fixture set: six users, the
// 39-vehicle stock, the demand board and a little chat history. Passwords
// are hashed at seed time so the fixture logins work against the real auth
// service.
func Seed() *Store {
	s := New()

	for _, su := range seedUsers {
		u := su.user
		u.PasswordHash = mustHash(su.password)
		s.users = append(s.users, u)
	}
	s.vehicles = append(s.vehicles, seedVehicles...)
	s.demands = append(s.demands, copyDemands(seedDemands)...)
	for _, m := range seedMessages {
		s.chat[m.Channel] = append(s.chat[m.Channel], m)
	}
	s.home = copyHome(seedHomeContent)
	return s
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

type seedUser struct {
	user     models.User
	password string
}

var seedUsers = []seedUser{
	{models.User{ID: 1, Name: "Admin User", Sector: models.SectorLogistics, Role: models.RoleAdmin, Email: "admin@cerberus.com", Phone: "00000 000000", Theme: models.ThemeDark}, "admin"},
	{models.User{ID: 2, Name: "Victor Junger", Sector: models.SectorHirefleet, Role: models.RoleUser, Email: "victor.junger@4th-d.co.uk", Phone: "01111 222222", Theme: models.ThemeDark}, "victor"},
	{models.User{ID: 3, Name: "Workshop Supervisor", Sector: models.SectorWorkshop, Role: models.RoleSupervisor, Email: "supervisor@cerberus.com", Phone: "01234 567890", Theme: models.ThemeDark}, "admin"},
	{models.User{ID: 4, Name: "Joana Silva", Sector: models.SectorLogistics, Role: models.RoleUser, Email: "joana@cerberus.com", Phone: "01234 567891", Theme: models.ThemeDark}, "password"},
	{models.User{ID: 5, Name: "Mike Johnson", Sector: models.SectorHirefleet, Role: models.RoleUser, Email: "mike@cerberus.com", Phone: "01234 567892", Theme: models.ThemeDark}, "password"},
	{models.User{ID: 6, Name: "Emily Carter", Sector: models.SectorLogistics, Role: models.RoleSupervisor, Email: "emily@cerberus.com", Phone: "01234 567893", Theme: models.ThemeDark}, "admin"},
}

var seedVehicles = []models.Vehicle{
	{ID: 1, Model: "nmax 125", Registration: "RJ72ERX", Status: models.VehicleOnHire},
	{ID: 2, Model: "WW 125", Registration: "RO24XYJ", Status: models.VehicleOnHire},
	{ID: 3, Model: "SH125i", Registration: "RV24VRM", Status: models.VehicleWithDriver},
	{ID: 4, Model: "CB125F", Registration: "RV68EOC", Status: models.VehicleWithDriver},
	{ID: 5, Model: "NC750X", Registration: "RA19XJH", Status: models.VehicleInWorkshop},
	{ID: 6, Model: "SV650", Registration: "RF22JKN", Status: models.VehicleWithDriver},
	{ID: 7, Model: "FORZA125", Registration: "RO24YGL", Status: models.VehicleOnHire},
	{ID: 8, Model: "SH350", Registration: "RV25LVN", Status: models.VehicleAvailable},
	{ID: 9, Model: "nmax 125", Registration: "BD19XYZ", Status: models.VehicleAvailable},
	{ID: 10, Model: "PCX 125", Registration: "EX20ABC", Status: models.VehicleAvailable},
	{ID: 11, Model: "PCX 125", Registration: "EX20ABD", Status: models.VehicleInWorkshop},
	{ID: 12, Model: "X-MAX 300", Registration: "YG21FGH", Status: models.VehicleInWorkshop},
	{ID: 13, Model: "Speed Triple RS 1160", Registration: "TR22RST", Status: models.VehicleWithDriver},
	{ID: 14, Model: "Himalayan 452", Registration: "RE23HML", Status: models.VehicleOnHire},
	{ID: 15, Model: "PCX 125", Registration: "LM24AAB", Status: models.VehicleWithDriver},
	{ID: 16, Model: "SH 125i", Registration: "LM24AAC", Status: models.VehicleWithDriver},
	{ID: 17, Model: "Forza 125", Registration: "LM24AAD", Status: models.VehicleWithDriver},
	{ID: 18, Model: "nmax 125", Registration: "LM24AAE", Status: models.VehicleInWorkshop},
	{ID: 19, Model: "CB 125F", Registration: "LM24AAF", Status: models.VehicleInWorkshop},
	{ID: 20, Model: "WW 125", Registration: "LM24AAG", Status: models.VehicleInWorkshop},
	{ID: 21, Model: "Forza 350", Registration: "LM24AAH", Status: models.VehicleInWorkshop},
	{ID: 22, Model: "SH 350", Registration: "LM24AAI", Status: models.VehicleInWorkshop},
	{ID: 23, Model: "X-MAX 300", Registration: "LM24AAJ", Status: models.VehicleInWorkshop},
	{ID: 24, Model: "NC 750X", Registration: "LM24AAK", Status: models.VehicleWithDriver},
	{ID: 25, Model: "KTM 125", Registration: "LM24AAL", Status: models.VehicleWithDriver},
	{ID: 26, Model: "SV 650", Registration: "LM24AAM", Status: models.VehicleWithDriver},
	{ID: 27, Model: "CBF 250-6", Registration: "LM24AAN", Status: models.VehicleWithDriver},
	{ID: 28, Model: "Himalayan 452", Registration: "LM24AAO", Status: models.VehicleWithDriver},
	{ID: 29, Model: "Speed Triple RS 1160", Registration: "LM24AAP", Status: models.VehicleInWorkshop},
	{ID: 30, Model: "PCX 125", Registration: "LM24AAQ", Status: models.VehicleInWorkshop},
	{ID: 31, Model: "nmax 125", Registration: "LM24AAR", Status: models.VehicleInWorkshop},
	{ID: 32, Model: "SH 125i", Registration: "LM24AAS", Status: models.VehicleWithDriver},
	{ID: 33, Model: "X-MAX 300", Registration: "LM24AAT", Status: models.VehicleWithDriver},
	{ID: 34, Model: "Forza 350", Registration: "LM24AAU", Status: models.VehicleWithDriver},
	{ID: 35, Model: "CB 125F", Registration: "LM24AAV", Status: models.VehicleAvailable},
	{ID: 36, Model: "KTM 125", Registration: "LM24AAW", Status: models.VehicleAvailable},
	{ID: 37, Model: "PCX 125", Registration: "LM24AAX", Status: models.VehicleAvailable},
	{ID: 38, Model: "nmax 125", Registration: "LM24AAY", Status: models.VehicleAvailable},
	{ID: 39, Model: "WW 125", Registration: "LM24AAZ", Status: models.VehicleAvailable},
}

var seedDemands = []models.DemandEntry{
	{ID: 1, ClientName: "DE OLIVEIRA", Proclaim: "613410", Postcode: "en3", Model: "nmax 125", Category: "B2A", Contract: "365", Status: models.StatusPizza, Helmet: "S&M", LicenceType: models.LicenceEuro, RoutedDate: "12/07", ConfirmedDate: "12/07", Swap: "YES", VehicleInfo: "PCX (nasi pizza)", Registration: "RJ72ERX", CyrusConfirmation: models.CyrusNo, ReferenceID: "613410", LastModifiedBy: "Admin", LastModifiedAt: "2024-07-20 10:00", Group: "Friday 12/07", CurrentSector: models.SectorLogistics, AssignedTo: 4},
	{ID: 2, ClientName: "SANTOS", Proclaim: "615551", Postcode: "WW10", Model: "WW 125", Category: "B2A", Contract: "365", Status: models.StatusLock, LicenceType: models.LicenceEuro, RoutedDate: "12/07", ConfirmedDate: "12/07", Swap: "NO", VehicleInfo: "SH125i (nasi lb)", Registration: "RO24XYJ", CyrusConfirmation: models.CyrusNo, ReferenceID: "615551", LastModifiedBy: "Admin", LastModifiedAt: "2024-07-20 10:05", Group: "Friday 12/07", CurrentSector: models.SectorLogistics},
	{ID: 3, ClientName: "KHESSAR", Proclaim: "615302", Postcode: "W10", Model: "X-MAX 300", Category: "B3A", Contract: "365", Status: models.StatusPizza, LicenceType: models.LicenceEuro, RoutedDate: "12/07", ConfirmedDate: "12/07", Swap: "YES", VehicleInfo: "SH350 (nasi pizza)", Registration: "YG21FGH", CyrusConfirmation: models.CyrusNo, ReferenceID: "615302", LastModifiedBy: "Scheduler", LastModifiedAt: "2024-07-20 10:15", Tags: []models.Tag{{Text: "Needs Topbox", Type: models.TagNormal}}, Group: "Friday 12/07", CurrentSector: models.SectorWorkshop, AssignedTo: 3},
	{ID: 4, ClientName: "VIAU", Proclaim: "615603", Postcode: "HP3", Model: "CBF 250-6", Category: "B3M", Contract: "365", Status: models.StatusLock, LicenceType: models.LicenceEuro, RoutedDate: "12/07", ConfirmedDate: "12/07", Swap: "YES", VehicleInfo: "SH350/FORZA (nasi lb)", Registration: "RJ25HLK", CyrusConfirmation: models.CyrusNo, ReferenceID: "615603", LastModifiedBy: "Admin", LastModifiedAt: "2024-07-20 10:20", Group: "Friday 12/07", CurrentSector: models.SectorHirefleet, IsArchived: true, CompletedAt: "2024-07-23"},
	{ID: 5, ClientName: "DINIZ", Proclaim: "615239", Postcode: "SL0", Model: "SH125i", Category: "B2A", Contract: "365", Status: models.StatusLock, Helmet: "L", LicenceType: models.LicenceCBT, RoutedDate: "15/07", Swap: "NO", VehicleInfo: "SH125i (nasi lb)", Registration: "RV24VRM", CyrusConfirmation: models.CyrusYes, ReferenceID: "615239", LastModifiedBy: "Scheduler", LastModifiedAt: "2024-07-20 11:30", Group: "Monday 15/07", CurrentSector: models.SectorLogistics},
	{ID: 6, ClientName: "Strain", Proclaim: "615411", Postcode: "CM7", Model: "CB125F", Category: "B2M", Contract: "4D", Status: models.StatusLock, Helmet: "S&M", LicenceType: models.LicenceFull, RoutedDate: "15/07", Swap: "NO", VehicleInfo: "CB125F + RACK", Registration: "RV68EOC", CyrusConfirmation: models.CyrusNo, ReferenceID: "615411", LastModifiedBy: "PlannerBot", LastModifiedAt: "2024-07-19 14:00", Group: "Monday 15/07", CurrentSector: models.SectorLogistics},
	{ID: 7, ClientName: "Baron", Proclaim: "615528", Postcode: "KA7", Model: "Speed Triple RS 1160", Category: "B6M", Contract: "4D", Status: models.StatusLock, LicenceType: models.LicenceFull, RoutedDate: "15/07", Swap: "NO", VehicleInfo: "NC750X", Registration: "TR22RST", CyrusConfirmation: models.CyrusNo, ReferenceID: "615528", LastModifiedBy: "PlannerBot", LastModifiedAt: "2024-07-19 14:05", Tags: []models.Tag{{Text: "Client wants early delivery", Type: models.TagImportant}}, Group: "Monday 15/07", CurrentSector: models.SectorHirefleet},
	{ID: 8, ClientName: "Brown", Proclaim: "615062", Postcode: "DH3", Model: "SV650", Category: "B4M", Contract: "4D", Helmet: "XL", LicenceType: models.LicenceFull, RoutedDate: "15/07", Swap: "NO", VehicleInfo: "SV650", Registration: "RF22JKN", CyrusConfirmation: models.CyrusNo, ReferenceID: "615524", LastModifiedBy: "PlannerBot", LastModifiedAt: "2024-07-19 15:00", Tags: []models.Tag{{Text: "Client Requested CB500", Type: models.TagUrgent}, {Text: "Check documents", Type: models.TagImportant}}, Group: "Monday 15/07", CurrentSector: models.SectorLogistics},
	{ID: 9, ClientName: "Pereira", Proclaim: "615571", Postcode: "CR4", Model: "FORZA125", Category: "B4M", Contract: "4D", LicenceType: models.LicenceFull, RoutedDate: "15/07", ConfirmedDate: "YES", Swap: "NO", VehicleInfo: "FORZA125 (nasi pizza)", Registration: "RO24YGL", CyrusConfirmation: models.CyrusYes, ReferenceID: "615571", LastModifiedBy: "Scheduler", LastModifiedAt: "2024-07-20 12:00", Group: "Monday 15/07", CurrentSector: models.SectorHirefleet},
	{ID: 10, ClientName: "Silva", Proclaim: "616001", Postcode: "N1", Model: "PCX 125", Category: "B2A", Contract: "365", Status: models.StatusPizza, Helmet: "M", LicenceType: models.LicenceCBT, RoutedDate: "16/07", ConfirmedDate: "16/07", Swap: "NO", VehicleInfo: "PCX 125", Registration: "LM24AAB", CyrusConfirmation: models.CyrusNo, ReferenceID: "616001", LastModifiedBy: "Joana Silva", LastModifiedAt: "2024-07-21 09:00", Group: "Tuesday 16/07", CurrentSector: models.SectorLogistics},
	{ID: 11, ClientName: "Johnson", Proclaim: "616002", Postcode: "E8", Model: "SH 125i", Category: "B2A", Contract: "4D", Status: models.StatusLock, LicenceType: models.LicenceFull, RoutedDate: "16/07", Swap: "YES", VehicleInfo: "SH 125i", Registration: "LM24AAC", CyrusConfirmation: models.CyrusNo, ReferenceID: "616002", LastModifiedBy: "Emily Carter", LastModifiedAt: "2024-07-21 09:30", Tags: []models.Tag{{Text: "VIP Client", Type: models.TagImportant}}, Group: "Tuesday 16/07", CurrentSector: models.SectorLogistics, AssignedTo: 6},
	{ID: 12, ClientName: "Williams", Proclaim: "616003", Postcode: "SE15", Model: "Forza 125", Category: "B2A", Contract: "365", LicenceType: models.LicenceEuro, RoutedDate: "16/07", Swap: "NO", VehicleInfo: "Forza 125", Registration: "LM24AAD", CyrusConfirmation: models.CyrusNo, ReferenceID: "616003", LastModifiedBy: "Joana Silva", LastModifiedAt: "2024-07-21 10:00", Group: "Tuesday 16/07", CurrentSector: models.SectorLogistics},
	{ID: 13, ClientName: "Jones", Proclaim: "617010", Postcode: "SW11", Model: "NC 750X", Category: "B5M", Contract: "4D", Status: models.StatusLock, LicenceType: models.LicenceFull, RoutedDate: "17/07", ConfirmedDate: "17/07", Swap: "NO", VehicleInfo: "NC 750X", Registration: "LM24AAK", CyrusConfirmation: models.CyrusNo, ReferenceID: "617010", LastModifiedBy: "Admin", LastModifiedAt: "2024-07-22 11:00", Group: "Wednesday 17/07", CurrentSector: models.SectorLogistics},
	{ID: 14, ClientName: "Taylor", Proclaim: "617011", Postcode: "W2", Model: "KTM 125", Category: "B2M", Contract: "4D", Status: models.StatusPizza, Helmet: "L", LicenceType: models.LicenceCBT, RoutedDate: "17/07", Swap: "YES", VehicleInfo: "KTM 125 + Rack", Registration: "LM24AAL", CyrusConfirmation: models.CyrusNo, ReferenceID: "617011", LastModifiedBy: "Emily Carter", LastModifiedAt: "2024-07-22 11:30", Group: "Wednesday 17/07", CurrentSector: models.SectorLogistics},
	{ID: 15, ClientName: "Davies", Proclaim: "617012", Postcode: "NW8", Model: "SV 650", Category: "B4M", Contract: "4D", LicenceType: models.LicenceFull, RoutedDate: "17/07", Swap: "NO", VehicleInfo: "SV 650", Registration: "LM24AAM", CyrusConfirmation: models.CyrusNo, ReferenceID: "617012", LastModifiedBy: "PlannerBot", LastModifiedAt: "2024-07-22 12:00", Tags: []models.Tag{{Text: "Check license", Type: models.TagUrgent}}, Group: "Wednesday 17/07", CurrentSector: models.SectorLogistics},
	{ID: 16, ClientName: "Evans", Proclaim: "616004", Postcode: "GU1", Model: "nmax 125", Category: "B2A", Contract: "365", Status: models.StatusLock, Helmet: "S", LicenceType: models.LicenceCBT, RoutedDate: "16/07", ConfirmedDate: "16/07", Swap: "NO", VehicleInfo: "Standard service", Registration: "LM24AAE", CyrusConfirmation: models.CyrusNo, ReferenceID: "616004", LastModifiedBy: "Workshop Supervisor", LastModifiedAt: "2024-07-21 14:00", Group: "Tuesday 16/07", CurrentSector: models.SectorWorkshop},
	{ID: 17, ClientName: "Thomas", Proclaim: "616005", Postcode: "KT1", Model: "CB 125F", Category: "B2M", Contract: "4D", LicenceType: models.LicenceFull, RoutedDate: "16/07", Swap: "NO", VehicleInfo: "New tyres required", Registration: "LM24AAF", CyrusConfirmation: models.CyrusNo, ReferenceID: "616005", LastModifiedBy: "Workshop Supervisor", LastModifiedAt: "2024-07-21 14:30", Tags: []models.Tag{{Text: "Urgent repair", Type: models.TagUrgent}}, Group: "Tuesday 16/07", CurrentSector: models.SectorWorkshop},
	{ID: 18, ClientName: "Roberts", Proclaim: "617020", Postcode: "TW9", Model: "WW 125", Category: "B2A", Contract: "365", Status: models.StatusPizza, LicenceType: models.LicenceEuro, RoutedDate: "17/07", ConfirmedDate: "17/07", Swap: "YES", VehicleInfo: "Topbox fitting", Registration: "LM24AAG", CyrusConfirmation: models.CyrusNo, ReferenceID: "617020", LastModifiedBy: "Workshop Supervisor", LastModifiedAt: "2024-07-22 15:00", Group: "Wednesday 17/07", CurrentSector: models.SectorWorkshop},
	{ID: 19, ClientName: "Wilson", Proclaim: "617021", Postcode: "UB6", Model: "Forza 350", Category: "B3A", Contract: "4D", Status: models.StatusLock, LicenceType: models.LicenceFull, RoutedDate: "17/07", Swap: "NO", VehicleInfo: "Full valet + checkup", Registration: "LM24AAH", CyrusConfirmation: models.CyrusNo, ReferenceID: "617021", LastModifiedBy: "Workshop Supervisor", LastModifiedAt: "2024-07-22 15:30", Group: "Wednesday 17/07", CurrentSector: models.SectorWorkshop},
	{ID: 20, ClientName: "Walker", Proclaim: "618030", Postcode: "HA1", Model: "SH 350", Category: "B3A", Contract: "365", LicenceType: models.LicenceFull, RoutedDate: "18/07", Swap: "YES", VehicleInfo: "New brakes", Registration: "LM24AAI", CyrusConfirmation: models.CyrusNo, ReferenceID: "618030", LastModifiedBy: "Admin", LastModifiedAt: "2024-07-23 09:00", Group: "Thursday 18/07", CurrentSector: models.SectorWorkshop, WorkshopStatus: models.WorkshopReserved},
	{ID: 21, ClientName: "Wright", Proclaim: "618031", Postcode: "WD17", Model: "X-MAX 300", Category: "B3A", Contract: "4D", Status: models.StatusLock, Helmet: "XL", LicenceType: models.LicenceCBT, RoutedDate: "18/07", ConfirmedDate: "18/07", Swap: "NO", VehicleInfo: "Electrical fault diagnosis", Registration: "LM24AAJ", CyrusConfirmation: models.CyrusNo, ReferenceID: "618031", LastModifiedBy: "Workshop Supervisor", LastModifiedAt: "2024-07-23 09:30", Tags: []models.Tag{{Text: "Complex issue", Type: models.TagImportant}}, Group: "Thursday 18/07", CurrentSector: models.SectorWorkshop},
	{ID: 22, ClientName: "Thompson", Proclaim: "618032", Postcode: "RM1", Model: "Speed Triple RS 1160", Category: "B6M", Contract: "4D", Status: models.StatusPizza, LicenceType: models.LicenceFull, RoutedDate: "18/07", Swap: "NO", VehicleInfo: "Chain and sprocket replacement", Registration: "LM24AAP", CyrusConfirmation: models.CyrusNo, ReferenceID: "618032", LastModifiedBy: "Scheduler", LastModifiedAt: "2024-07-23 10:15", Group: "Thursday 18/07", CurrentSector: models.SectorWorkshop},
	{ID: 23, ClientName: "White", Proclaim: "619040", Postcode: "IG1", Model: "PCX 125", Category: "B2A", Contract: "365", Status: models.StatusLock, LicenceType: models.LicenceEuro, RoutedDate: "19/07", ConfirmedDate: "19/07", Swap: "YES", VehicleInfo: "Standard service", Registration: "LM24AAQ", CyrusConfirmation: models.CyrusNo, ReferenceID: "619040", LastModifiedBy: "Admin", LastModifiedAt: "2024-07-24 11:00", Group: "Friday 19/07", CurrentSector: models.SectorWorkshop},
	{ID: 24, ClientName: "Green", Proclaim: "619041", Postcode: "DA1", Model: "nmax 125", Category: "B2A", Contract: "365", LicenceType: models.LicenceCBT, RoutedDate: "19/07", Swap: "NO", VehicleInfo: "Panel damage repair", Registration: "LM24AAR", CyrusConfirmation: models.CyrusNo, ReferenceID: "619041", LastModifiedBy: "Workshop Supervisor", LastModifiedAt: "2024-07-24 11:30", Group: "Friday 19/07", CurrentSector: models.SectorWorkshop, WorkshopStatus: models.WorkshopReserved},
	{ID: 25, ClientName: "Harris", Proclaim: "616006", Postcode: "BR1", Model: "CBF 250-6", Category: "B3M", Contract: "4D", Status: models.StatusLock, LicenceType: models.LicenceFull, RoutedDate: "16/07", ConfirmedDate: "16/07", Swap: "NO", VehicleInfo: "Awaiting Cyrus confirmation", Registration: "LM24AAN", CyrusConfirmation: models.CyrusNo, ReferenceID: "616006", LastModifiedBy: "Mike Johnson", LastModifiedAt: "2024-07-21 16:00", Group: "Tuesday 16/07", CurrentSector: models.SectorHirefleet, AssignedTo: 2},
	{ID: 26, ClientName: "Clark", Proclaim: "616007", Postcode: "CR0", Model: "Himalayan 452", Category: "B4M", Contract: "4D", LicenceType: models.LicenceFull, RoutedDate: "16/07", ConfirmedDate: "16/07", Swap: "NO", VehicleInfo: "Ready for handover", Registration: "LM24AAO", CyrusConfirmation: models.CyrusNo, ReferenceID: "616007", LastModifiedBy: "Victor Junger", LastModifiedAt: "2024-07-21 16:30", Tags: []models.Tag{{Text: "Arrange collection", Type: models.TagNormal}}, Group: "Tuesday 16/07", CurrentSector: models.SectorHirefleet, WorkshopStatus: models.WorkshopReserved},
	{ID: 27, ClientName: "Lewis", Proclaim: "617022", Postcode: "SM1", Model: "SH 125i", Category: "B2A", Contract: "365", Status: models.StatusLock, LicenceType: models.LicenceCBT, RoutedDate: "17/07", ConfirmedDate: "17/07", Swap: "YES", VehicleInfo: "Client to call back", Registration: "LM24AAS", CyrusConfirmation: models.CyrusNo, ReferenceID: "617022", LastModifiedBy: "Mike Johnson", LastModifiedAt: "2024-07-22 17:00", Group: "Wednesday 17/07", CurrentSector: models.SectorHirefleet},
	{ID: 28, ClientName: "King", Proclaim: "617023", Postcode: "TN1", Model: "X-MAX 300", Category: "B3A", Contract: "365", Status: models.StatusPizza, LicenceType: models.LicenceEuro, RoutedDate: "17/07", ConfirmedDate: "17/07", Swap: "NO", VehicleInfo: "Confirmed, awaiting driver", Registration: "LM24AAT", CyrusConfirmation: models.CyrusYes, ReferenceID: "617023", LastModifiedBy: "Victor Junger", LastModifiedAt: "2024-07-22 17:30", Group: "Wednesday 17/07", CurrentSector: models.SectorHirefleet, WorkshopStatus: models.WorkshopReserved},
	{ID: 29, ClientName: "Baker", Proclaim: "618033", Postcode: "ME1", Model: "Forza 350", Category: "B3A", Contract: "4D", LicenceType: models.LicenceFull, RoutedDate: "18/07", ConfirmedDate: "18/07", Swap: "NO", VehicleInfo: "Ready for handover", Registration: "LM24AAU", CyrusConfirmation: models.CyrusNo, ReferenceID: "618033", LastModifiedBy: "Mike Johnson", LastModifiedAt: "2024-07-23 14:00", Group: "Thursday 18/07", CurrentSector: models.SectorHirefleet, WorkshopStatus: models.WorkshopReserved},
	{ID: 30, ClientName: "Allen", Proclaim: "615529", Postcode: "SS1", Model: "NC 750X", Category: "B6M", Contract: "4D", LicenceType: models.LicenceFull, RoutedDate: "15/07", Swap: "NO", VehicleInfo: "NC750X", Registration: "NC750XYZ", CyrusConfirmation: models.CyrusNo, ReferenceID: "615529", LastModifiedBy: "PlannerBot", LastModifiedAt: "2024-07-19 14:05", Tags: []models.Tag{{Text: "High value vehicle", Type: models.TagImportant}}, Group: "Monday 15/07", CurrentSector: models.SectorWorkshop},
	{ID: 31, ClientName: "Scott", Proclaim: "618035", Postcode: "RH1", Model: "CB 125F", Category: "B2M", Contract: "4D", Status: models.StatusLock, LicenceType: models.LicenceCBT, RoutedDate: "18/07", ConfirmedDate: "18/07", Swap: "YES", VehicleInfo: "Ready for handover", Registration: "LM24AAV", CyrusConfirmation: models.CyrusNo, ReferenceID: "618035", LastModifiedBy: "Victor Junger", LastModifiedAt: "2024-07-23 15:00", Group: "Thursday 18/07", CurrentSector: models.SectorHirefleet, WorkshopStatus: models.WorkshopReserved},
	{ID: 32, ClientName: "Turner", Proclaim: "619042", Postcode: "PO1", Model: "KTM 125", Category: "B2M", Contract: "4D", LicenceType: models.LicenceFull, RoutedDate: "19/07", ConfirmedDate: "19/07", Swap: "NO", VehicleInfo: "Confirmed", Registration: "LM24AAW", CyrusConfirmation: models.CyrusYes, ReferenceID: "619042", LastModifiedBy: "Mike Johnson", LastModifiedAt: "2024-07-24 16:00", Group: "Friday 19/07", CurrentSector: models.SectorHirefleet, WorkshopStatus: models.WorkshopReserved},
	{ID: 33, ClientName: "Hill", Proclaim: "619043", Postcode: "BN1", Model: "PCX 125", Category: "B2A", Contract: "365", Status: models.StatusLock, LicenceType: models.LicenceEuro, RoutedDate: "19/07", ConfirmedDate: "19/07", Swap: "NO", VehicleInfo: "Awaiting Cyrus confirmation", Registration: "LM24AAX", CyrusConfirmation: models.CyrusNo, ReferenceID: "619043", LastModifiedBy: "Victor Junger", LastModifiedAt: "2024-07-24 16:30", Group: "Friday 19/07", CurrentSector: models.SectorHirefleet},
	{ID: 34, ClientName: "Parker", Proclaim: "619044", Postcode: "SO14", Model: "nmax 125", Category: "B2A", Contract: "365", Status: models.StatusPizza, LicenceType: models.LicenceCBT, RoutedDate: "19/07", ConfirmedDate: "19/07", Swap: "YES", VehicleInfo: "Ready for handover", Registration: "LM24AAY", CyrusConfirmation: models.CyrusNo, ReferenceID: "619044", LastModifiedBy: "Mike Johnson", LastModifiedAt: "2024-07-24 17:00", Group: "Friday 19/07", CurrentSector: models.SectorHirefleet, WorkshopStatus: models.WorkshopReserved},
}

var seedMessages = []models.ChatMessage{
	{ID: 1, UserID: 6, UserName: "Emily Carter", Message: "Morning team, please double check all postcodes for the Monday run.", Timestamp: "09:05", Channel: models.Channel(models.SectorLogistics)},
	{ID: 2, UserID: 4, UserName: "Joana Silva", Message: "Will do, Emily. I see a new one for Diniz, I'll confirm it now.", Timestamp: "09:07", Channel: models.Channel(models.SectorLogistics)},
	{ID: 3, UserID: 3, UserName: "Workshop Supervisor", Message: "The X-MAX for Khessar needs a topbox fitted, can someone pick that up?", Timestamp: "10:20", Channel: models.Channel(models.SectorWorkshop)},
	{ID: 4, UserID: 5, UserName: "Mike Johnson", Message: "Pereira has confirmed collection for the CBR600.", Timestamp: "12:01", Channel: models.Channel(models.SectorHirefleet)},
	{ID: 5, UserID: 5, UserName: "Mike Johnson", Message: "RE: Demand #615603 for VIAU", Timestamp: "12:05", Channel: models.Channel(models.SectorHirefleet), DemandID: 4},
	{ID: 101, UserID: 1, UserName: "Admin User", Message: "Welcome to the new general chat! Messages here are visible to all sectors.", Timestamp: "08:00", Channel: models.ChannelAll},
}

var seedHomeContent = models.HomePageContent{
	Title:    "Welcome back!",
	Subtitle: "Your central hub for transport management and demand planning.",
	Updates: []models.UpdateItem{
		{ID: 1, Title: "New Feature: Full Login & History", Date: "25th July 2024", Content: "The app now features a full user login system, a profile page to manage your details, and a comprehensive History page to view completed demands.", Color: "amber"},
		{ID: 2, Title: "Workshop Maintenance Schedule", Date: "23rd July 2024", Content: "Please be advised that the workshop will be undergoing scheduled maintenance this Friday. Plan your vehicle preparations accordingly. Check the new 'Stock' page to see vehicles currently in the workshop.", Color: "teal"},
	},
}
