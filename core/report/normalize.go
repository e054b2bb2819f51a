package report

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Candidate source keys per target field, tried in order. The compliance feed
// has shipped several column-naming revisions; normalization resolves them
// once into RawRecord so nothing downstream needs dynamic lookups.
var (
	groupNameKeys    = []string{"groupname", "group_name", "cohort", "cohortname"}
	userIDKeys       = []string{"userid", "user_id", "learnerid", "id"}
	firstNameKeys    = []string{"firstname", "first_name"}
	lastNameKeys     = []string{"lastname", "last_name"}
	fullNameKeys     = []string{"fullname", "full_name", "name"}
	activityNameKeys = []string{"activityname", "activity_name", "activity", "assignment"}
	activityTypeKeys = []string{"activitytype", "activity_type", "type", "modtype"}
	gradeKeys        = []string{"grade", "score", "finalgrade"}
	dueDateKeys      = []string{"duedate", "due_date", "deadline"}
	submittedAtKeys  = []string{"submissiondate", "submission_date", "submitted_at", "timesubmitted"}
)

// NormalizeRecords coerces a sequence of loose feed objects into valid
// RawRecords. Malformed entries are dropped silently: the feed is
// best-effort and aggregate counts matter more than strict validation.
func NormalizeRecords(raws []map[string]interface{}) []RawRecord {
	records := make([]RawRecord, 0, len(raws))
	for _, raw := range raws {
		fields := lowerKeys(raw)

		rec := RawRecord{
			GroupName:    stringField(fields, groupNameKeys),
			UserID:       stringField(fields, userIDKeys),
			FirstName:    stringField(fields, firstNameKeys),
			LastName:     stringField(fields, lastNameKeys),
			ActivityName: stringField(fields, activityNameKeys),
			ActivityType: stringField(fields, activityTypeKeys),
			Grade:        stringField(fields, gradeKeys),
			DueDate:      ParseTimestamp(anyField(fields, dueDateKeys)),
			SubmittedAt:  ParseTimestamp(anyField(fields, submittedAtKeys)),
		}
		if rec.FirstName == "" && rec.LastName == "" {
			rec.FirstName, rec.LastName = splitFullName(stringField(fields, fullNameKeys))
		}
		if rec.ActivityType == "" {
			rec.ActivityType = "unknown"
		}

		if rec.valid() {
			records = append(records, rec)
		}
	}
	return records
}

func lowerKeys(raw map[string]interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		fields[strings.ToLower(k)] = v
	}
	return fields
}

// stringField resolves the first candidate key yielding a non-empty string.
func stringField(fields map[string]interface{}, keys []string) string {
	for _, key := range keys {
		if s := coerceString(fields[key]); s != "" {
			return s
		}
	}
	return ""
}

// anyField resolves the first candidate key present with a non-nil value.
func anyField(fields map[string]interface{}, keys []string) interface{} {
	for _, key := range keys {
		if v, ok := fields[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func coerceString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case json.Number:
		return val.String()
	}
	return ""
}

func splitFullName(full string) (first, last string) {
	if full == "" {
		return "", ""
	}
	parts := strings.SplitN(full, " ", 2)
	first = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		last = strings.TrimSpace(parts[1])
	}
	return first, last
}
