package quiz

type State string

const (
	StateLoading      State = "LOADING"
	StateAwaitingName State = "AWAITING_NAME"
	StateInProgress   State = "IN_PROGRESS"
	StateCompleted    State = "COMPLETED"
	StateUnavailable  State = "UNAVAILABLE"
)

var AllStates = []State{
	StateLoading,
	StateAwaitingName,
	StateInProgress,
	StateCompleted,
	StateUnavailable,
}

func (s State) IsValid() bool {
	for _, v := range AllStates {
		if s == v {
			return true
		}
	}
	return false
}
