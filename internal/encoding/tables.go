// Package encoding holds the static label→code tables used to turn
// categorical survey answers into the real-valued codes the classifiers
// were trained on. All tables are fixed at compile time and never mutated.
package encoding

// #region education

// EducationCodes maps the nine education labels to their trained codes.
var EducationCodes = map[string]float64{
	"Left School Before 16 years":            -2.43591,
	"Left School at 16 years":                -1.73790,
	"Left School at 17 years":                -1.43719,
	"Left School at 18 years":                -1.22751,
	"Some College, No Certificate Or Degree": -0.61113,
	"Professional Certificate/Diploma":       -0.05921,
	"University Degree":                      0.45468,
	"Masters Degree":                         1.16365,
	"Doctorate Degree":                       1.98437,
}

// EducationLabels lists the education labels in keyboard order.
var EducationLabels = []string{
	"Left School Before 16 years",
	"Left School at 16 years",
	"Left School at 17 years",
	"Left School at 18 years",
	"Some College, No Certificate Or Degree",
	"Professional Certificate/Diploma",
	"University Degree",
	"Masters Degree",
	"Doctorate Degree",
}

// #endregion education

// #region ethnicity

// EthnicityCodes maps the seven ethnicity labels to their trained codes.
var EthnicityCodes = map[string]float64{
	"Asian":             -0.50212,
	"Black":             -1.10702,
	"Mixed-Black/Asian": 1.90725,
	"Mixed-White/Asian": 0.12600,
	"Mixed-White/Black": -0.22166,
	"Other":             0.11440,
	"White":             -0.31685,
}

// EthnicityLabels lists the ethnicity labels in keyboard order.
var EthnicityLabels = []string{
	"Asian",
	"Black",
	"Mixed-Black/Asian",
	"Mixed-White/Asian",
	"Mixed-White/Black",
	"Other",
	"White",
}

// #endregion ethnicity

// #region lookup

// EducationCode resolves an education label. ok is false for unknown labels.
func EducationCode(label string) (float64, bool) {
	code, ok := EducationCodes[label]
	return code, ok
}

// EthnicityCode resolves an ethnicity label. ok is false for unknown labels.
func EthnicityCode(label string) (float64, bool) {
	code, ok := EthnicityCodes[label]
	return code, ok
}

// #endregion lookup
