package forms

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"dialeradmin/models"
	"dialeradmin/models/constants/callrequest"

	"github.com/gin-gonic/gin"
)

var now = time.Date(2026, 10, 19, 15, 4, 5, 0, time.Local)

func bind(t *testing.T, values url.Values, dst interface{}) error {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.ShouldBind(dst)
}

func TestVoipSearchForm_DateRange(t *testing.T) {
	var f VoipSearchForm
	err := bind(t, url.Values{"from_date": {"2026-10-01"}, "to_date": {"2026-10-05"}, "status": {"all"}}, &f)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	filter, err := f.Filter(now)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}

	wantFrom := time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local)
	if filter.From == nil || !filter.From.Equal(wantFrom) {
		t.Fatalf("expected from %v, got %v", wantFrom, filter.From)
	}
	if filter.To == nil || filter.To.Format("2006-01-02 15:04:05") != "2026-10-05 23:59:59" {
		t.Fatalf("expected end of 2026-10-05, got %v", filter.To)
	}
	if filter.Disposition != nil {
		t.Fatalf("status all must not filter dispositions")
	}
}

func TestVoipSearchForm_OnlyStatusAndCaller(t *testing.T) {
	var f VoipSearchForm
	if err := bind(t, url.Values{"status": {"2"}, "callerid": {" 1000 "}}, &f); err != nil {
		t.Fatalf("bind: %v", err)
	}

	filter, err := f.Filter(now)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if filter.From != nil || filter.To != nil {
		t.Fatalf("expected no date bounds, got %+v", filter)
	}
	if filter.Disposition == nil || *filter.Disposition != 2 {
		t.Fatalf("expected disposition 2, got %v", filter.Disposition)
	}
	if filter.CallerID != "1000" {
		t.Fatalf("expected trimmed caller id, got %q", filter.CallerID)
	}
}

func TestVoipSearchForm_EmptyFallsBackToToday(t *testing.T) {
	var f VoipSearchForm
	if err := bind(t, url.Values{"status": {"all"}}, &f); err != nil {
		t.Fatalf("bind: %v", err)
	}

	filter, err := f.Filter(now)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	want := time.Date(2026, 10, 19, 0, 0, 0, 0, time.Local)
	if filter.From == nil || !filter.From.Equal(want) || filter.To != nil {
		t.Fatalf("expected today filter, got %+v", filter)
	}
}

func TestVoipSearchForm_Invalid(t *testing.T) {
	var f VoipSearchForm
	if err := bind(t, url.Values{"from_date": {"19/10/2026"}}, &f); err == nil {
		t.Fatalf("expected a binding error for a malformed date")
	}

	f = VoipSearchForm{Status: "77"}
	if _, err := f.Filter(now); err == nil {
		t.Fatalf("expected error for unknown status")
	}

	f = VoipSearchForm{FromDate: now, ToDate: now.AddDate(0, 0, -1)}
	if _, err := f.Filter(now); err == nil {
		t.Fatalf("expected error for reversed range")
	}
}

func TestCallrequestForm_Apply(t *testing.T) {
	var f CallrequestForm
	err := bind(t, url.Values{
		"callback_time": {"2026-10-20 09:00:00"},
		"status":        {"3"},
		"call_type":     {"1"},
		"campaign":      {"4"},
		"aleg_gateway":  {""},
		"callerid":      {"555"},
		"timeout":       {"45"},
	}, &f)
	if err != nil {
		t.Fatalf("bind: %v", err)
	}

	var c models.Callrequest
	f.Apply(&c)

	if c.RequestUUID == "" {
		t.Fatalf("expected a generated request uuid")
	}
	if c.Status != callrequest.RETRY || c.CallType != callrequest.ALLOWRETRY {
		t.Fatalf("unexpected status/type %v/%v", c.Status, c.CallType)
	}
	if c.CampaignID == nil || *c.CampaignID != 4 {
		t.Fatalf("expected campaign 4, got %v", c.CampaignID)
	}
	if c.AlegGatewayID != nil {
		t.Fatalf("expected no gateway, got %v", *c.AlegGatewayID)
	}
	if c.Timeout != 45 || c.CallerID != "555" {
		t.Fatalf("unexpected values %+v", c)
	}
	if got := c.CallbackTime.Format(CallbackLayout); got != "2026-10-20 09:00:00" {
		t.Fatalf("unexpected callback time %q", got)
	}
}

func TestCallrequestForm_Validation(t *testing.T) {
	var f CallrequestForm
	if err := bind(t, url.Values{"status": {"1"}, "call_type": {"1"}}, &f); err == nil {
		t.Fatalf("expected error without callback_time")
	}

	f = CallrequestForm{}
	err := bind(t, url.Values{"callback_time": {"2026-10-20 09:00:00"}, "status": {"9"}, "call_type": {"1"}}, &f)
	if err == nil {
		t.Fatalf("expected error for unknown status")
	}

	f = CallrequestForm{}
	err = bind(t, url.Values{"callback_time": {"2026-10-20 09:00:00"}, "status": {"1"}, "call_type": {"1"}, "campaign": {"abc"}}, &f)
	if err == nil {
		t.Fatalf("expected error for non numeric campaign")
	}
}

func TestCallrequestValues(t *testing.T) {
	v := NewCallrequestValues(now)
	if v["status"] != "1" || v["call_type"] != "1" || v["timeout"] != "30" {
		t.Fatalf("unexpected defaults %v", v)
	}
	if v["callback_time"] != "2026-10-19 15:04:05" {
		t.Fatalf("unexpected callback_time %q", v["callback_time"])
	}
	if v["campaign"] != "" {
		t.Fatalf("expected empty campaign, got %q", v["campaign"])
	}
}

func TestErrors_UsesInputNames(t *testing.T) {
	var f CallrequestForm
	err := bind(t, url.Values{"status": {"1"}, "call_type": {"7"}}, &f)
	if err == nil {
		t.Fatalf("expected validation errors")
	}

	msgs := Errors(&f, err)
	joined := strings.Join(msgs, "\n")

	if !strings.Contains(joined, "callback_time: this field is required") {
		t.Fatalf("missing callback_time message in %q", joined)
	}
	if !strings.Contains(joined, "call_type: value out of range") {
		t.Fatalf("missing call_type message in %q", joined)
	}
	if Errors(&f, nil) != nil {
		t.Fatalf("expected no messages without an error")
	}
}
