package voipcall

import "dialeradmin/admin"

// NewAdmin - change-list configuration of dialer_cdr, read only
func NewAdmin() *admin.ModelAdmin {
	return &admin.ModelAdmin{
		AppLabel:    "dialer_cdr",
		ModelName:   "voipcall",
		VerboseName: "Call Report",
		Fieldsets: []admin.Fieldset{
			{
				Name: "Call",
				Fields: []string{
					"id", "user", "used_gateway", "callrequest", "callid", "uniqueid", "callerid", "dnid",
					"recipient_number", "recipient_dialcode", "starting_date", "sessiontime",
					"sessiontime_real", "disposition", "voipplan",
				},
			},
		},
		ListDisplay: []string{
			"user", "used_gateway", "callid", "uniqueid", "callerid", "dnid", "recipient_number",
			"starting_date", "sessiontime", "sessiontime_real", "disposition", "recipient_dialcode",
		},
		ListDisplayLinks: []string{"callid"},
		Ordering:         []string{"-starting_date"},
		ListPerPage:      admin.DefaultPerPage,
		CanAdd:           false,
		ReadOnly:         true,
	}
}
