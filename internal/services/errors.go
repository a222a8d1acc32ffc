package services

// Service errors
var (
	ErrRound1NotActive    = &ServiceError{Message: "Round 1 is not currently active"}
	ErrRound2NotActive    = &ServiceError{Message: "Round 2 is not currently active"}
	ErrPaymentNotVerified = &ServiceError{Message: "Your team's payment is not verified"}
	ErrAlreadyAttempted   = &ServiceError{Message: "You have already submitted the quiz"}
	ErrAlreadySubmitted   = &ServiceError{Message: "Your team has already submitted for Round 2"}
	ErrTimeLimitExceeded  = &ServiceError{Message: "Time limit exceeded. Submission rejected"}
	ErrNotAuthorized      = &ServiceError{Message: "Not authorized"}
	ErrNotLeader          = &ServiceError{Message: "Only the team leader can do this"}
	ErrNotInTeam          = &ServiceError{Message: "You are not in a team"}
	ErrUserInTeam         = &ServiceError{Message: "User already in a team"}
	ErrTeamFull           = &ServiceError{Message: "Team is already full (max 3 members)"}
	ErrTeamNameTaken      = &ServiceError{Message: "Team name already taken"}
	ErrEmailTaken         = &ServiceError{Message: "User already exists"}
	ErrInvalidCredentials = &ServiceError{Message: "Invalid email or password"}
	ErrNotAdvanced        = &ServiceError{Message: "Your team did not make the Round 1 cutoff"}
)

// ServiceError represents a service-level error
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}
