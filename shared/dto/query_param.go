package dto

import (
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
	"net/http"
	"time"
)

// DateRange is an inclusive range of hotel-local calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// FromRequest populates the range from date_from/date_to query parameters.
// A missing bound defaults to today; a reversed range is rejected.
//
//	r := &dto.DateRange{}
//	if err := r.FromRequest(req); err != nil { ... }
func (d *DateRange) FromRequest(r *http.Request) error {
	query := r.URL.Query()
	today := timezone.Today()

	d.From, d.To = today, today

	if from := query.Get(constant.RequestParamFrom); from != "" {
		parsed, err := timezone.ParseDate(from)
		if err != nil {
			return failure.BadRequestFromString("date_from must be a date in YYYY-MM-DD format")
		}

		d.From = parsed
	}

	if to := query.Get(constant.RequestParamTo); to != "" {
		parsed, err := timezone.ParseDate(to)
		if err != nil {
			return failure.BadRequestFromString("date_to must be a date in YYYY-MM-DD format")
		}

		d.To = parsed
	}

	if d.To.Before(d.From) {
		return failure.BadRequestFromString("date_to must not be before date_from")
	}

	return nil
}

// Contains reports whether t falls on a day inside the range.
func (d DateRange) Contains(t time.Time) bool {
	day := timezone.StartOfDay(t)

	return !day.Before(d.From) && !day.After(d.To)
}

// String renders the range as "from..to".
func (d DateRange) String() string {
	return d.From.Format(constant.DateFormat) + ".." + d.To.Format(constant.DateFormat)
}

// DateFromRequest reads an optional single date parameter.
func DateFromRequest(r *http.Request, param string) (*time.Time, error) {
	value := r.URL.Query().Get(param)
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	parsed, err := timezone.ParseDate(value)
	if err != nil {
		return nil, failure.BadRequestFromString(param + " must be a date in YYYY-MM-DD format")
	}

	return &parsed, nil
}
