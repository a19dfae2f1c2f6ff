package workflow

import "github.com/edulink/internship-api/models"

var Pending = State{
	Name:      models.PendingStatus,
	EnterFunc: nil, // applications are created pending, the state is never re-entered
}

var Reviewed = State{
	Name:      models.ReviewedStatus,
	EnterFunc: ReviewApplication,
}

var InterviewScheduled = State{
	Name:      models.InterviewScheduledStatus,
	EnterFunc: ScheduleInterview,
}

var Accepted = State{
	Name:      models.AcceptedStatus,
	EnterFunc: AcceptApplication,
}

var Rejected = State{
	Name:      models.RejectedStatus,
	EnterFunc: RejectApplication,
}

var Withdrawn = State{
	Name:      models.WithdrawnStatus,
	EnterFunc: WithdrawApplication,
}

var Completed = State{
	Name:      models.CompletedStatus,
	EnterFunc: CompleteApplication,
}

// States is the full set of workflow states
var States = []State{
	Pending,
	Reviewed,
	InterviewScheduled,
	Accepted,
	Rejected,
	Withdrawn,
	Completed,
}

// Transitions is the fixed transition table for the application status workflow.
// Each entry lists the source statuses from which the target state may be entered.
var Transitions = []Transition{
	{
		Label:               "review",
		TargetState:         Reviewed,
		AllowedSourceStates: []string{models.PendingStatus},
	},
	{
		Label:               "schedule_interview",
		TargetState:         InterviewScheduled,
		AllowedSourceStates: []string{models.ReviewedStatus},
	},
	{
		Label:               "accept",
		TargetState:         Accepted,
		AllowedSourceStates: []string{models.ReviewedStatus, models.InterviewScheduledStatus},
	},
	{
		Label:               "reject",
		TargetState:         Rejected,
		AllowedSourceStates: []string{models.PendingStatus, models.ReviewedStatus, models.InterviewScheduledStatus},
	},
	{
		Label:               "withdraw",
		TargetState:         Withdrawn,
		AllowedSourceStates: []string{models.PendingStatus, models.ReviewedStatus, models.InterviewScheduledStatus, models.AcceptedStatus},
	},
	{
		Label:               "complete",
		TargetState:         Completed,
		AllowedSourceStates: []string{models.AcceptedStatus},
	},
}
