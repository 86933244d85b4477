package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

const (
	DateLayout      = "2006-01-02"
	MinMusabaqaYear = 1900
	genderMale      = "Male"
	genderFemale    = "Female"
)

var (
	genders         = []string{genderMale, genderFemale}
	maritalStatuses = []string{"Married", "Single", "Widow"}
)

func init() {
	govalidator.CustomTypeTagMap.Set("musabaqayear", func(i interface{}, _ interface{}) bool {
		year, ok := i.(int)
		if !ok {
			return false
		}
		return year >= MinMusabaqaYear && year <= time.Now().Year()
	})

	govalidator.CustomTypeTagMap.Set("isodate", func(i interface{}, _ interface{}) bool {
		s, ok := i.(string)
		if !ok {
			return false
		}
		_, err := time.Parse(DateLayout, s)
		return err == nil
	})
}

// NormalizeDate turns a YYYY-MM-DD date or an RFC 3339 timestamp into
// YYYY-MM-DD. Unparseable input is returned trimmed so validation can report
// it.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(DateLayout, s); err == nil {
		return s
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.Format(DateLayout)
	}
	return s
}

func canonical(value string, options []string) string {
	value = strings.TrimSpace(value)
	for _, opt := range options {
		if strings.EqualFold(opt, value) {
			return opt
		}
	}
	return value
}

// Normalize trims every text field, lower-cases the email address, fixes the
// casing of enum values and brings the date of birth to YYYY-MM-DD.
func (r *Registration) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.MiddleName = strings.TrimSpace(r.MiddleName)
	r.Surname = strings.TrimSpace(r.Surname)
	r.Gender = canonical(r.Gender, genders)
	r.MaritalStatus = canonical(r.MaritalStatus, maritalStatuses)
	r.DateOfBirth = NormalizeDate(r.DateOfBirth)
	r.State = strings.TrimSpace(r.State)
	r.LGA = strings.TrimSpace(r.LGA)
	r.Ward = strings.TrimSpace(r.Ward)
	r.EmailAddress = strings.ToLower(strings.TrimSpace(r.EmailAddress))
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.HomeAddress = strings.TrimSpace(r.HomeAddress)
	r.BankDetails.BankName = strings.TrimSpace(r.BankDetails.BankName)
	r.BankDetails.AccountName = strings.TrimSpace(r.BankDetails.AccountName)
	r.BankDetails.AccountNumber = strings.TrimSpace(r.BankDetails.AccountNumber)
}

// Validate checks required fields, enums and ranges. The returned error is a
// *ValidationError listing every problem found.
func (r *Registration) Validate() error {
	if _, err := govalidator.ValidateStruct(r); err != nil {
		byField := govalidator.ErrorsByField(err)
		messages := make([]string, 0, len(byField))
		for _, msg := range byField {
			messages = append(messages, msg)
		}
		sort.Strings(messages)
		return &ValidationError{Messages: messages}
	}
	return nil
}

func (r *Registration) IsMale() bool {
	return r.Gender == genderMale
}

func (r *Registration) IsFemale() bool {
	return r.Gender == genderFemale
}

func setIfPresent(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Apply copies the present patch fields onto r. bank_details is merged field
// by field.
func (p *RegistrationPatch) Apply(r *Registration) {
	setIfPresent(&r.FirstName, p.FirstName)
	setIfPresent(&r.MiddleName, p.MiddleName)
	setIfPresent(&r.Surname, p.Surname)
	setIfPresent(&r.Gender, p.Gender)
	setIfPresent(&r.MaritalStatus, p.MaritalStatus)
	setIfPresent(&r.DateOfBirth, p.DateOfBirth)
	setIfPresent(&r.State, p.State)
	setIfPresent(&r.LGA, p.LGA)
	setIfPresent(&r.Ward, p.Ward)
	setIfPresent(&r.EmailAddress, p.EmailAddress)
	setIfPresent(&r.PhoneNumber, p.PhoneNumber)
	setIfPresent(&r.HomeAddress, p.HomeAddress)
	if p.YearOfMusabaqa != nil {
		r.YearOfMusabaqa = *p.YearOfMusabaqa
	}
	if p.BankDetails != nil {
		setIfPresent(&r.BankDetails.BankName, p.BankDetails.BankName)
		setIfPresent(&r.BankDetails.AccountName, p.BankDetails.AccountName)
		setIfPresent(&r.BankDetails.AccountNumber, p.BankDetails.AccountNumber)
	}
}

// Summarize counts entries by gender.
func Summarize(entries []Registration) Statistics {
	stats := Statistics{TotalEntries: len(entries)}
	for i := range entries {
		switch {
		case entries[i].IsMale():
			stats.MaleCount++
		case entries[i].IsFemale():
			stats.FemaleCount++
		}
	}
	return stats
}
