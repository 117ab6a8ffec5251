package models

type UserRole string

const (
	EmployeeRole   UserRole = "EMPLOYEE"
	ManagerRole    UserRole = "MANAGER"
	HRRole         UserRole = "HR"
	CEORole        UserRole = "CEO"
	AccountantRole UserRole = "ACCOUNTANT"
	CFORole        UserRole = "CFO"
	CashierRole    UserRole = "CASHIER"
	AdminRole      UserRole = "ADMIN"
)

var roleHumanName = map[UserRole]string{
	EmployeeRole:   "Employee",
	ManagerRole:    "Manager",
	HRRole:         "HR officer",
	CEORole:        "CEO",
	AccountantRole: "Accountant",
	CFORole:        "CFO",
	CashierRole:    "Cashier",
	AdminRole:      "Administrator",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

// SystemActorID marks audit entries produced by the service itself
// (expiry transitions), not by a user decision.
const SystemActorID = "system"

type UserStatus string

const (
	WorkingStatus   UserStatus = "WORKING"
	OnLeaveStatus   UserStatus = "ON_LEAVE"
	DismissedStatus UserStatus = "DISMISSED"
)

var userStatusHumanName = map[UserStatus]string{
	WorkingStatus:   "Working",
	OnLeaveStatus:   "On leave",
	DismissedStatus: "Dismissed",
}

func (r UserStatus) ToHuman() string {
	if human, exist := userStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}
