package model

// CountyHealthRecord is one row of the county_health_rankings table: a single
// measure observation for one county over one reporting year span. Every
// field is kept as a string exactly as stored; the source data mixes
// formats (ratios, counts, blanks) and numeric coercion would lose
// information. This struct corresponds to a row in the
// `county_health_rankings` table joined via FipsCode.
//
// Fields:
//
//	State      – full state name.
//	County     – full county name.
//	StateCode  – two-digit state FIPS prefix.
//	CountyCode – three-digit county portion of the FIPS code.
//	YearSpan   – reporting period, e.g. "2003-2005".
//	MeasureName – human-readable measure, e.g. "Adult obesity".
//	MeasureID  – numeric identifier of the measure (stored as text).
//	Numerator/Denominator/RawValue – observation values as stored.
//	CILowerBound/CIUpperBound – confidence interval bounds.
//	DataReleaseYear – year the dataset was published.
//	FipsCode   – full 5-character county FIPS code, the join key against
//	             zip_county.county_code.
type CountyHealthRecord struct {
	State           string `json:"state"`
	County          string `json:"county"`
	StateCode       string `json:"state_code"`
	CountyCode      string `json:"county_code"`
	YearSpan        string `json:"year_span"`
	MeasureName     string `json:"measure_name"`
	MeasureID       string `json:"measure_id"`
	Numerator       string `json:"numerator"`
	Denominator     string `json:"denominator"`
	RawValue        string `json:"raw_value"`
	CILowerBound    string `json:"confidence_interval_lower_bound"`
	CIUpperBound    string `json:"confidence_interval_upper_bound"`
	DataReleaseYear string `json:"data_release_year"`
	FipsCode        string `json:"fipscode"`
}
