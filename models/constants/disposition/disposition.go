package disposition

import "strconv"

// Code - coded outcome of a VoIP call
type Code int

const (
	// ANSWER -
	ANSWER Code = iota + 1

	// BUSY -
	BUSY

	// NOANSWER -
	NOANSWER

	// CANCEL -
	CANCEL

	// CONGESTION -
	CONGESTION

	// CHANUNAVAIL -
	CHANUNAVAIL

	// DONTCALL -
	DONTCALL

	// TORTURE -
	TORTURE

	// INVALIDARGS -
	INVALIDARGS
)

var names = map[Code]string{
	ANSWER:      "ANSWER",
	BUSY:        "BUSY",
	NOANSWER:    "NOANSWER",
	CANCEL:      "CANCEL",
	CONGESTION:  "CONGESTION",
	CHANUNAVAIL: "CHANUNAVAIL",
	DONTCALL:    "DONTCALL",
	TORTURE:     "TORTURE",
	INVALIDARGS: "INVALIDARGS",
}

// Name - human readable label, empty for unknown codes
func Name(code int) string {
	return names[Code(code)]
}

// String -
func (c Code) String() string {
	return Name(int(c))
}

// Valid -
func Valid(code int) bool {
	_, ok := names[Code(code)]
	return ok
}

// Choice - a select option
type Choice struct {
	Value string
	Label string
}

// Choices - select options in code order
func Choices() []Choice {

	out := make([]Choice, 0, len(names))

	for c := ANSWER; c <= INVALIDARGS; c++ {
		out = append(out, Choice{Value: strconv.Itoa(int(c)), Label: names[c]})
	}

	return out
}
