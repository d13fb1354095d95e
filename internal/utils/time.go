package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LocalDate is a calendar date in Oman local time, serialized as 2006-01-02.
type LocalDate struct {
	time.Time
}

const (
	dateLayout        = "2006-01-02"
	certificateLayout = "02/01/2006"
)

var muscatLocation *time.Location

func init() {
	var err error
	muscatLocation, err = time.LoadLocation("Asia/Muscat")
	if err != nil {
		muscatLocation = time.FixedZone("GST", 4*60*60)
	}
}

func Muscat() *time.Location {
	return muscatLocation
}

func NewLocalDate(t time.Time) LocalDate {
	local := t.In(muscatLocation)
	return LocalDate{Time: time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, muscatLocation)}
}

// CertificateString renders the date the way it is printed on certificates.
func (d LocalDate) CertificateString() string {
	if d.IsZero() {
		return ""
	}
	return d.In(muscatLocation).Format(certificateLayout)
}

func (d *LocalDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, s, muscatLocation)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d LocalDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.In(muscatLocation).Format(dateLayout) + `"`), nil
}

func (d LocalDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *LocalDate) Scan(value interface{}) error {
	if value == nil {
		d.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = NewLocalDate(v)
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("cannot scan type %T into LocalDate", value)
	}
}

func (d *LocalDate) parse(s string) error {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := time.ParseInLocation(dateLayout, s, muscatLocation)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}
