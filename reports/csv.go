package reports

import (
	"encoding/csv"
	"io"
	"strconv"

	"dialeradmin/models"
)

// ExportHeader - first row of every export
var ExportHeader = []string{
	"user", "callid", "callerid", "dnid", "recipient_number", "starting_date",
	"sessiontime", "sessiontime_real", "disposition", "voipplan", "gateway",
}

// ExportRecord - one csv row, disposition as its label
func ExportRecord(v *models.VoIPCall) []string {
	return []string{
		v.Value("user"),
		v.CallID,
		v.CallerID,
		v.DNID,
		v.RecipientNumber,
		models.FormatTime(v.StartingDate),
		strconv.FormatInt(v.SessionTime, 10),
		strconv.FormatInt(v.SessionTimeReal, 10),
		v.DispositionName(),
		v.Value("voipplan"),
		v.Value("gateway"),
	}
}

// WriteCSV - streams the filtered set to w
func WriteCSV(w io.Writer, repo Repository, f Filter) error {

	writer := csv.NewWriter(w)

	if err := writer.Write(ExportHeader); err != nil {
		return err
	}

	err := repo.Each(f, func(v *models.VoIPCall) error {
		return writer.Write(ExportRecord(v))
	})

	if err != nil {
		return err
	}

	writer.Flush()

	return writer.Error()
}
