package access

import "textile-erp-nav/internal/domain"

// Rule grants a capability to members of DepartmentCode and to holders of
// RoleName. An empty RoleName means the capability has no alternate role.
type Rule struct {
	Capability     Capability
	DepartmentCode string
	RoleName       string
}

var rules = []Rule{
	{Capability: Sales, DepartmentCode: "SALES", RoleName: "Satış"},
	{Capability: Production, DepartmentCode: "PROD", RoleName: "Üretim"},
	{Capability: Inventory, DepartmentCode: "INV", RoleName: "Depo"},
	{Capability: Quality, DepartmentCode: "QUALITY", RoleName: "Kalite"},
	{Capability: Planning, DepartmentCode: "PLAN", RoleName: "Planlama"},
	{Capability: Weaving, DepartmentCode: "DKM", RoleName: "Dokuma"},
	{Capability: ProductDev, DepartmentCode: "ARGE", RoleName: "Ürün Geliştirme"},
	{Capability: RawQuality, DepartmentCode: "HKK", RoleName: "Ham Kalite"},
	{Capability: YarnSpinning, DepartmentCode: "IPL", RoleName: "İplik Büküm"},
	{Capability: Samples, DepartmentCode: "NUM", RoleName: "Numune"},
	{Capability: Laboratory, DepartmentCode: "LAB", RoleName: "Laboratuvar"},
	{Capability: Kartela, DepartmentCode: "KRT", RoleName: "Kartela"},
	{Capability: YarnWarehouse, DepartmentCode: "IPD", RoleName: "İplik Depo"},
	{Capability: Warehouse, DepartmentCode: "KDP", RoleName: "Kumaş Depo"},
	{Capability: Shipment, DepartmentCode: "SEV", RoleName: "Sevkiyat"},
	{Capability: ElectricMaintenance, DepartmentCode: "EBK", RoleName: "Elektrik Bakım"},
	{Capability: MechanicalMaintenance, DepartmentCode: "MBK", RoleName: "Mekanik Bakım"},
	{Capability: IT, DepartmentCode: "IT", RoleName: "Bilgi İşlem"},
}

// Rules returns a copy of the base capability rules.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Resolve computes the capability flags of user. A department reference that
// matches nothing in departments yields no department-derived flags. Admin
// sets every flag.
func Resolve(roles []domain.Role, departments []domain.Department, user domain.User) Flags {
	names := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		names[r.Name] = struct{}{}
	}
	hasRole := func(name string) bool {
		if name == "" {
			return false
		}
		_, ok := names[name]
		return ok
	}

	var deptCode string
	if user.DepartmentID != nil {
		for _, d := range departments {
			if d.ID == *user.DepartmentID {
				deptCode = d.Code
				break
			}
		}
	}

	admin := hasRole(AdminRole)
	flags := make(Flags, len(rules)+2)
	flags[Admin] = admin
	for _, r := range rules {
		flags[r.Capability] = admin || (deptCode != "" && deptCode == r.DepartmentCode) || hasRole(r.RoleName)
	}

	flags[YarnWarehouse] = flags[YarnWarehouse] || flags[Inventory]
	flags[MaintenanceStaff] = flags.Any(ElectricMaintenance, MechanicalMaintenance, IT)
	return flags
}
