package constants

// Field identifies one of the metadata columns extracted from an agreement.
type Field string

// Stable values (these exact strings are the table headers in both the
// predictions file and the ground-truth file; "Aggrement" matches the
// labeled dataset and must not be corrected).
const (
	FieldFileName  Field = "File Name"
	FieldValue     Field = "Aggrement Value"
	FieldStartDate Field = "Aggrement Start Date"
	FieldEndDate   Field = "Aggrement End Date"
	FieldNotice    Field = "Renewal Notice (Days)"
	FieldPartyOne  Field = "Party One"
	FieldPartyTwo  Field = "Party Two"
)

// ScoredFields are the columns compared against ground truth, in report order.
// File Name is the join key and is never scored.
var ScoredFields = []Field{
	FieldValue,
	FieldStartDate,
	FieldEndDate,
	FieldNotice,
	FieldPartyOne,
	FieldPartyTwo,
}

// Headers returns the full column header row for exported tables.
func Headers() []string {
	out := make([]string, 0, len(ScoredFields)+1)
	out = append(out, string(FieldFileName))
	for _, f := range ScoredFields {
		out = append(out, string(f))
	}
	return out
}

// Questions maps each scored field to the fixed natural-language question put
// to the extractive QA model.
var Questions = map[Field]string{
	FieldValue:     "What is the rent?",
	FieldStartDate: "What is the start date?",
	FieldEndDate:   "What is the end date?",
	FieldNotice:    "What is the notice period?",
	FieldPartyOne:  "Who is the first party?",
	FieldPartyTwo:  "Who is the second party?",
}
