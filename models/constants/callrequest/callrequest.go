package callrequest

// Status - call request lifecycle state
type Status int

const (
	// PENDING -
	PENDING Status = iota + 1

	// FAILURE -
	FAILURE

	// RETRY -
	RETRY

	// SUCCESS -
	SUCCESS

	// ABORT -
	ABORT

	// PAUSE -
	PAUSE

	// PROCESS -
	PROCESS

	// INPROCESS -
	INPROCESS
)

var statusNames = map[Status]string{
	PENDING:   "PENDING",
	FAILURE:   "FAILURE",
	RETRY:     "RETRY",
	SUCCESS:   "SUCCESS",
	ABORT:     "ABORT",
	PAUSE:     "PAUSE",
	PROCESS:   "PROCESS",
	INPROCESS: "IN_PROCESS",
}

func (s Status) String() string {
	return statusNames[s]
}

// Type - whether the dialer may retry the request
type Type int

const (
	// ALLOWRETRY -
	ALLOWRETRY Type = iota + 1

	// CANNOTRETRY -
	CANNOTRETRY

	// RETRYDONE -
	RETRYDONE
)

var typeNames = map[Type]string{
	ALLOWRETRY:  "ALLOW RETRY",
	CANNOTRETRY: "CANNOT RETRY",
	RETRYDONE:   "RETRY DONE",
}

func (t Type) String() string {
	return typeNames[t]
}

// Choice - a select option
type Choice struct {
	Value int
	Label string
}

// StatusChoices -
func StatusChoices() []Choice {
	out := make([]Choice, 0, len(statusNames))
	for s := PENDING; s <= INPROCESS; s++ {
		out = append(out, Choice{Value: int(s), Label: statusNames[s]})
	}
	return out
}

// TypeChoices -
func TypeChoices() []Choice {
	out := make([]Choice, 0, len(typeNames))
	for t := ALLOWRETRY; t <= RETRYDONE; t++ {
		out = append(out, Choice{Value: int(t), Label: typeNames[t]})
	}
	return out
}
