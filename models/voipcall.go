package models

import (
	"strconv"
	"time"

	"dialeradmin/models/constants/disposition"
)

// VoIPCall - dialer_cdr table, one completed call leg
type VoIPCall struct {
	ID                int64     `gorm:"primary_key" json:"id"`
	UserID            int64     `gorm:"column:user_id" json:"user_id"`
	UsedGatewayID     *int64    `gorm:"column:used_gateway_id" json:"used_gateway_id"`
	CallrequestID     *int64    `gorm:"column:callrequest_id" json:"callrequest_id"`
	CallID            string    `gorm:"column:callid;size:120" json:"callid"`
	UniqueID          string    `gorm:"column:uniqueid;size:120" json:"uniqueid"`
	CallerID          string    `gorm:"column:callerid;size:120;index" json:"callerid"`
	DNID              string    `gorm:"column:dnid;size:120" json:"dnid"`
	RecipientNumber   string    `gorm:"column:recipient_number;size:32" json:"recipient_number"`
	RecipientDialcode *int64    `gorm:"column:recipient_dialcode" json:"recipient_dialcode"`
	StartingDate      time.Time `gorm:"column:starting_date;index" json:"starting_date"`
	SessionTime       int64     `gorm:"column:sessiontime;not null;default:0" json:"sessiontime"`
	SessionTimeReal   int64     `gorm:"column:sessiontime_real;not null;default:0" json:"sessiontime_real"`
	Disposition       int       `gorm:"column:disposition" json:"disposition"`
	VoIPPlanID        *int64    `gorm:"column:voipplan_id" json:"voipplan_id"`

	// resolved from auth_user / dialer_gateway for display
	Username    string `gorm:"-" json:"user"`
	GatewayName string `gorm:"-" json:"gateway"`
}

// TableName -
func (VoIPCall) TableName() string {
	return "dialer_cdr"
}

// PK -
func (v *VoIPCall) PK() int64 {
	return v.ID
}

// DispositionName -
func (v *VoIPCall) DispositionName() string {
	return disposition.Name(v.Disposition)
}

// Value - display value of a column for the admin screens
func (v *VoIPCall) Value(field string) string {

	switch field {
	case "id":
		return strconv.FormatInt(v.ID, 10)
	case "user":
		if v.Username != "" {
			return v.Username
		}
		return strconv.FormatInt(v.UserID, 10)
	case "used_gateway", "gateway":
		if v.GatewayName != "" {
			return v.GatewayName
		}
		return optionalID(v.UsedGatewayID)
	case "callrequest":
		return optionalID(v.CallrequestID)
	case "callid":
		return v.CallID
	case "uniqueid":
		return v.UniqueID
	case "callerid":
		return v.CallerID
	case "dnid":
		return v.DNID
	case "recipient_number":
		return v.RecipientNumber
	case "recipient_dialcode":
		return optionalID(v.RecipientDialcode)
	case "starting_date":
		return FormatTime(v.StartingDate)
	case "sessiontime":
		return strconv.FormatInt(v.SessionTime, 10)
	case "sessiontime_real":
		return strconv.FormatInt(v.SessionTimeReal, 10)
	case "disposition":
		return v.DispositionName()
	case "voipplan":
		return optionalID(v.VoIPPlanID)
	}

	return ""
}
