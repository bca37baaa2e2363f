package entity

import "github.com/leasemetric/leasebench/constants"

// MetadataRecord is one row of the predictions table: the six normalized
// fields extracted from a single agreement. Values stay strings at the table
// boundary; Value and NoticeDays hold the decimal rendering of the parsed
// integers, dates hold DD.MM.YYYY (or the raw answer when normalization
// passed through).
type MetadataRecord struct {
	FileName   string `json:"file_name"`
	Value      string `json:"agreement_value"`
	StartDate  string `json:"agreement_start_date"`
	EndDate    string `json:"agreement_end_date"`
	NoticeDays string `json:"renewal_notice_days"`
	PartyOne   string `json:"party_one"`
	PartyTwo   string `json:"party_two"`
}

// GroundTruthRecord has the same shape as MetadataRecord but is loaded from
// the externally supplied labeled table. Read-only reference data.
type GroundTruthRecord struct {
	FileName   string `json:"file_name"`
	Value      string `json:"agreement_value"`
	StartDate  string `json:"agreement_start_date"`
	EndDate    string `json:"agreement_end_date"`
	NoticeDays string `json:"renewal_notice_days"`
	PartyOne   string `json:"party_one"`
	PartyTwo   string `json:"party_two"`
}

// FieldValue returns the record's value for a scored field.
func (r MetadataRecord) FieldValue(f constants.Field) string {
	switch f {
	case constants.FieldValue:
		return r.Value
	case constants.FieldStartDate:
		return r.StartDate
	case constants.FieldEndDate:
		return r.EndDate
	case constants.FieldNotice:
		return r.NoticeDays
	case constants.FieldPartyOne:
		return r.PartyOne
	case constants.FieldPartyTwo:
		return r.PartyTwo
	default:
		return ""
	}
}

// FieldValue returns the record's value for a scored field.
func (r GroundTruthRecord) FieldValue(f constants.Field) string {
	switch f {
	case constants.FieldValue:
		return r.Value
	case constants.FieldStartDate:
		return r.StartDate
	case constants.FieldEndDate:
		return r.EndDate
	case constants.FieldNotice:
		return r.NoticeDays
	case constants.FieldPartyOne:
		return r.PartyOne
	case constants.FieldPartyTwo:
		return r.PartyTwo
	default:
		return ""
	}
}

// Row renders the record as a table row in header order.
func (r MetadataRecord) Row() []string {
	return []string{r.FileName, r.Value, r.StartDate, r.EndDate, r.NoticeDays, r.PartyOne, r.PartyTwo}
}

// RecallReport maps each scored field to a recall ratio in [0,1].
type RecallReport map[constants.Field]float64
