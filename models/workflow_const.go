package models

type RequestKind string

const (
	KindLeave   RequestKind = "LEAVE"
	KindCash    RequestKind = "CASH"
	KindWarning RequestKind = "WARNING"
	KindPIP     RequestKind = "PIP"
)

var kindHumanName = map[RequestKind]string{
	KindLeave:   "Leave request",
	KindCash:    "Cash request",
	KindWarning: "Disciplinary warning",
	KindPIP:     "Performance improvement plan",
}

func (k RequestKind) ToHuman() string {
	if human, exist := kindHumanName[k]; exist {
		return human
	}
	return string(k)
}

// WorkflowAction is what an actor asks the transition engine to do.
type WorkflowAction string

const (
	ActionApprove  WorkflowAction = "APPROVE"
	ActionReject   WorkflowAction = "REJECT"
	ActionDisburse WorkflowAction = "DISBURSE"
	ActionEscalate WorkflowAction = "ESCALATE"
	ActionExpire   WorkflowAction = "EXPIRE"
)

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "ANNUAL"
	LeaveTypeSick      LeaveType = "SICK"
	LeaveTypeMaternity LeaveType = "MATERNITY"
	LeaveTypeUnpaid    LeaveType = "UNPAID"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceRemote  AttendanceStatus = "REMOTE"
)
