package callrequest

import (
	"strconv"

	"dialeradmin/admin"
	"dialeradmin/models/constants/callrequest"
)

// NewAdmin - change-list configuration of dialer_callrequest
func NewAdmin() *admin.ModelAdmin {
	return &admin.ModelAdmin{
		AppLabel:    "dialer_cdr",
		ModelName:   "callrequest",
		VerboseName: "Call Requests",
		Fieldsets: []admin.Fieldset{
			{
				Name: "Standard options",
				Fields: []string{
					"request_uuid", "campaign", "callback_time", "status", "context", "timeout",
					"hangup_cause", "callerid", "call_type", "aleg_gateway", "voipapp",
				},
			},
			{
				Name:    "Advanced options",
				Classes: []string{"collapse"},
				Fields:  []string{"extra_data", "subscriber", "variable", "account"},
			},
		},
		ListDisplay: []string{
			"id", "campaign", "request_uuid", "callback_time", "status", "context",
			"callerid", "call_type", "num_attempt", "last_attempt_time",
		},
		ListDisplayLinks: []string{"id", "request_uuid"},
		ListFilter:       []string{"callerid", "callback_time", "status", "call_type"},
		DateFields:       []string{"callback_time"},
		Ordering:         []string{"id"},
		SearchFields:     []string{"request_uuid"},
		ListPerPage:      admin.DefaultPerPage,
		CanAdd:           true,
		Widgets: map[string]admin.Widget{
			"status":        {Type: "select", Choices: choices(callrequest.StatusChoices())},
			"call_type":     {Type: "select", Choices: choices(callrequest.TypeChoices())},
			"callback_time": {Type: "datetime"},
			"timeout":       {Type: "number"},
			"campaign":      {Type: "number"},
			"aleg_gateway":  {Type: "number"},
			"voipapp":       {Type: "number"},
			"subscriber":    {Type: "number"},
			"extra_data":    {Type: "textarea"},
			"variable":      {Type: "textarea"},
		},
	}
}

func choices(in []callrequest.Choice) []admin.Choice {
	out := make([]admin.Choice, 0, len(in))
	for _, c := range in {
		out = append(out, admin.Choice{Value: strconv.Itoa(c.Value), Label: c.Label})
	}
	return out
}
