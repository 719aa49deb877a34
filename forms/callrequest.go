package forms

import (
	"strconv"
	"strings"
	"time"

	"dialeradmin/models"
	"dialeradmin/models/constants/callrequest"

	"github.com/google/uuid"
)

// CallbackLayout - callback_time input
const CallbackLayout = "2006-01-02 15:04:05"

// CallrequestForm - add / change form of a call request
type CallrequestForm struct {
	RequestUUID  string    `form:"request_uuid" binding:"max=120"`
	Campaign     string    `form:"campaign" binding:"omitempty,numeric"`
	CallbackTime time.Time `form:"callback_time" time_format:"2006-01-02 15:04:05" binding:"required"`
	Status       int       `form:"status" binding:"required,min=1,max=8"`
	Context      string    `form:"context" binding:"max=120"`
	Timeout      int       `form:"timeout" binding:"min=0"`
	HangupCause  string    `form:"hangup_cause" binding:"max=80"`
	CallerID     string    `form:"callerid" binding:"max=80"`
	CallType     int       `form:"call_type" binding:"required,min=1,max=3"`
	AlegGateway  string    `form:"aleg_gateway" binding:"omitempty,numeric"`
	VoIPApp      string    `form:"voipapp" binding:"omitempty,numeric"`
	ExtraData    string    `form:"extra_data"`
	Subscriber   string    `form:"subscriber" binding:"omitempty,numeric"`
	Variable     string    `form:"variable"`
	Account      string    `form:"account" binding:"max=120"`
}

// Apply - copies the form onto c
func (f *CallrequestForm) Apply(c *models.Callrequest) {

	c.RequestUUID = strings.TrimSpace(f.RequestUUID)
	if c.RequestUUID == "" {
		c.RequestUUID = uuid.New().String()
	}

	c.CampaignID = optionalID(f.Campaign)
	c.CallbackTime = f.CallbackTime
	c.Status = callrequest.Status(f.Status)
	c.Context = f.Context
	c.Timeout = f.Timeout
	c.HangupCause = f.HangupCause
	c.CallerID = f.CallerID
	c.CallType = callrequest.Type(f.CallType)
	c.AlegGatewayID = optionalID(f.AlegGateway)
	c.VoIPAppID = optionalID(f.VoIPApp)
	c.ExtraData = f.ExtraData
	c.SubscriberID = optionalID(f.Subscriber)
	c.Variable = f.Variable
	c.Account = f.Account
}

// CallrequestValues - raw input values of c for the change form
func CallrequestValues(c *models.Callrequest) map[string]string {

	values := map[string]string{
		"request_uuid":  c.RequestUUID,
		"campaign":      idString(c.CampaignID),
		"callback_time": "",
		"status":        strconv.Itoa(int(c.Status)),
		"context":       c.Context,
		"timeout":       strconv.Itoa(c.Timeout),
		"hangup_cause":  c.HangupCause,
		"callerid":      c.CallerID,
		"call_type":     strconv.Itoa(int(c.CallType)),
		"aleg_gateway":  idString(c.AlegGatewayID),
		"voipapp":       idString(c.VoIPAppID),
		"extra_data":    c.ExtraData,
		"subscriber":    idString(c.SubscriberID),
		"variable":      c.Variable,
		"account":       c.Account,
	}

	if !c.CallbackTime.IsZero() {
		values["callback_time"] = c.CallbackTime.Format(CallbackLayout)
	}

	return values
}

// NewCallrequestValues - initial values of the add form
func NewCallrequestValues(now time.Time) map[string]string {
	return CallrequestValues(&models.Callrequest{
		CallbackTime: now,
		Status:       callrequest.PENDING,
		CallType:     callrequest.ALLOWRETRY,
		Timeout:      30,
	})
}

func optionalID(s string) *int64 {

	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}

	return &id
}

func idString(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
