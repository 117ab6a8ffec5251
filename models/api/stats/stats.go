package statsapimodels

type DashboardView struct {
	LeaveByStatus   map[string]int `json:"leave_by_status"`
	CashByStatus    map[string]int `json:"cash_by_status"`
	WarningByStatus map[string]int `json:"warning_by_status"`
	PendingTotal    int            `json:"pending_total"`
	CashApprovedSum float64        `json:"cash_approved_sum"`
	CashPaidSum     float64        `json:"cash_paid_sum"`
	TopPerformers   []TopPerformer `json:"top_performers"`
}

type TopPerformer struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Points       int    `json:"points"`
}
