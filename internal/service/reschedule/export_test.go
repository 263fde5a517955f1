package reschedule

// Bridge unexported message constants to the external test package.
const (
	MsgManualFollowup = msgManualFollowup
	MsgTrouble        = msgTrouble
)
