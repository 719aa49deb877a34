package models

import (
	"strconv"
	"time"

	"dialeradmin/models/constants/callrequest"
)

// Callrequest - dialer_callrequest table, a scheduled outbound call job
type Callrequest struct {
	ID              int64              `gorm:"primary_key" json:"id"`
	RequestUUID     string             `gorm:"column:request_uuid;size:120;index" json:"request_uuid"`
	CampaignID      *int64             `gorm:"column:campaign_id" json:"campaign_id"`
	CallbackTime    time.Time          `gorm:"column:callback_time" json:"callback_time"`
	Status          callrequest.Status `gorm:"column:status" json:"status"`
	Context         string             `gorm:"column:context;size:120" json:"context"`
	Timeout         int                `gorm:"column:timeout" json:"timeout"`
	HangupCause     string             `gorm:"column:hangup_cause;size:80" json:"hangup_cause"`
	CallerID        string             `gorm:"column:callerid;size:80" json:"callerid"`
	CallType        callrequest.Type   `gorm:"column:call_type" json:"call_type"`
	AlegGatewayID   *int64             `gorm:"column:aleg_gateway_id" json:"aleg_gateway_id"`
	VoIPAppID       *int64             `gorm:"column:voipapp_id" json:"voipapp_id"`
	ExtraData       string             `gorm:"column:extra_data;type:text" json:"extra_data"`
	SubscriberID    *int64             `gorm:"column:subscriber_id" json:"subscriber_id"`
	Variable        string             `gorm:"column:variable;type:text" json:"variable"`
	Account         string             `gorm:"column:account;size:120" json:"account"`
	NumAttempt      int                `gorm:"column:num_attempt" json:"num_attempt"`
	LastAttemptTime *time.Time         `gorm:"column:last_attempt_time" json:"last_attempt_time"`
	CreatedDate     time.Time          `gorm:"column:created_date" json:"created_date"`
	UpdatedDate     time.Time          `gorm:"column:updated_date" json:"updated_date"`

	// resolved from dialer_campaign / dialer_gateway for display
	CampaignName    string `gorm:"-" json:"-"`
	AlegGatewayName string `gorm:"-" json:"-"`
}

// TableName -
func (Callrequest) TableName() string {
	return "dialer_callrequest"
}

// BeforeCreate - gorm hook
func (c *Callrequest) BeforeCreate() error {
	now := time.Now()
	c.CreatedDate, c.UpdatedDate = now, now
	return nil
}

// BeforeUpdate - gorm hook
func (c *Callrequest) BeforeUpdate() error {
	c.UpdatedDate = time.Now()
	return nil
}

// PK -
func (c *Callrequest) PK() int64 {
	return c.ID
}

// Value - display value of a column for the admin screens
func (c *Callrequest) Value(field string) string {

	switch field {
	case "id":
		return strconv.FormatInt(c.ID, 10)
	case "request_uuid":
		return c.RequestUUID
	case "campaign":
		if c.CampaignName != "" {
			return c.CampaignName
		}
		return optionalID(c.CampaignID)
	case "callback_time":
		return FormatTime(c.CallbackTime)
	case "status":
		return c.Status.String()
	case "context":
		return c.Context
	case "timeout":
		return strconv.Itoa(c.Timeout)
	case "hangup_cause":
		return c.HangupCause
	case "callerid":
		return c.CallerID
	case "call_type":
		return c.CallType.String()
	case "aleg_gateway":
		if c.AlegGatewayName != "" {
			return c.AlegGatewayName
		}
		return optionalID(c.AlegGatewayID)
	case "voipapp":
		return optionalID(c.VoIPAppID)
	case "extra_data":
		return c.ExtraData
	case "subscriber":
		return optionalID(c.SubscriberID)
	case "variable":
		return c.Variable
	case "account":
		return c.Account
	case "num_attempt":
		return strconv.Itoa(c.NumAttempt)
	case "last_attempt_time":
		if c.LastAttemptTime == nil {
			return ""
		}
		return FormatTime(*c.LastAttemptTime)
	}

	return ""
}
