// Package access derives the capability flags that gate ERP navigation from a
// user's roles and department.
package access

type Capability string

const (
	Admin                 Capability = "isAdmin"
	Sales                 Capability = "isSales"
	Production            Capability = "isProduction"
	Inventory             Capability = "isInventory"
	Quality               Capability = "isQuality"
	Planning              Capability = "isPlanning"
	Weaving               Capability = "isWeaving"
	ProductDev            Capability = "isProductDev"
	RawQuality            Capability = "isRawQuality"
	YarnSpinning          Capability = "isYarnSpinning"
	Samples               Capability = "isSamples"
	Laboratory            Capability = "isLaboratory"
	Kartela               Capability = "isKartela"
	YarnWarehouse         Capability = "isYarnWarehouse"
	Warehouse             Capability = "isWarehouse"
	Shipment              Capability = "isShipment"
	ElectricMaintenance   Capability = "isElectricMaintenance"
	MechanicalMaintenance Capability = "isMechanicalMaintenance"
	IT                    Capability = "isIT"
	MaintenanceStaff      Capability = "isMaintenanceStaff"
)

// AdminRole is the role name that grants every capability.
const AdminRole = "Admin"

// Flags is a fully computed capability set. Absent keys read as false.
type Flags map[Capability]bool

func (f Flags) Has(c Capability) bool {
	return f[c]
}

// Any reports whether at least one of caps is set.
func (f Flags) Any(caps ...Capability) bool {
	for _, c := range caps {
		if f[c] {
			return true
		}
	}
	return false
}

// All lists every capability the resolver produces, composites last.
func All() []Capability {
	out := make([]Capability, 0, len(rules)+2)
	out = append(out, Admin)
	for _, r := range rules {
		out = append(out, r.Capability)
	}
	return append(out, MaintenanceStaff)
}
