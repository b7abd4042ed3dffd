package domain

type Department struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type Role struct {
	Name string `json:"name"`
}

type Permission struct {
	Code string `json:"code"`
}

// User is the authenticated actor as seen by navigation. DepartmentID is nil
// when the user has no department assigned.
type User struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
}

// Directory is the reference data snapshot one navigation pass is derived from.
type Directory struct {
	User        User
	Roles       []Role
	Permissions []Permission
	Departments []Department
}

// DepartmentOf returns the department the user points at, if it still exists.
func (d Directory) DepartmentOf() (Department, bool) {
	if d.User.DepartmentID == nil {
		return Department{}, false
	}
	for _, dept := range d.Departments {
		if dept.ID == *d.User.DepartmentID {
			return dept, true
		}
	}
	return Department{}, false
}
