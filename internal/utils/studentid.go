package utils

import "strings"

// StudentEmailDomain is the only domain allowed for student
// self-registration.
const StudentEmailDomain = "student.nstu.edu.bd"

// hallPrefixMap maps the 3-letter student-id prefix to the short
// code of the hall the student is allotted to.  The prefixes predate
// the hall short codes and do not always match them (MUH vs BMAU,
// BKH vs HBK).
var hallPrefixMap = map[string]string{
	"MUH": "BMAU", // Bir Muktijuddha Abdul Malek Ukil Hall
	"ASH": "ASH",  // Basha Shaheed Abdus Salam Hall
	"BKH": "HBK",  // Hazrat Bibi Khadiza Hall
	"JSH": "JSH",  // July Shaheed Smriti Chhatri Hall
	"NFH": "NFH",  // Nabab Foyzunnessa Choudhurani Hall
}

// HallCodeFromStudentID resolves the first three letters of a
// student id to a hall short code.  It fails closed: unknown or too
// short prefixes return ok=false.
func HallCodeFromStudentID(studentID string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(studentID))
	if len(s) < 3 {
		return "", false
	}
	code, ok := hallPrefixMap[s[:3]]
	return code, ok
}

// IsStudentEmail reports whether email belongs to the student
// domain.  Comparison is case-insensitive and requires a non-empty
// local part.
func IsStudentEmail(email string) bool {
	e := strings.ToLower(strings.TrimSpace(email))
	at := strings.IndexByte(e, '@')
	if at <= 0 {
		return false
	}
	return e[at+1:] == StudentEmailDomain
}
