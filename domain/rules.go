package domain

// UniqueRule names one uniqueness constraint over registrations. Each rule is
// backed by a unique index of the same name in every store.
type UniqueRule int

const (
	RuleNaturalKey UniqueRule = iota
	RuleEmail
	RulePhone
	RuleAccountNumber
)

// UniqueRules is the canonical rule set, applied on check, create, update and
// import alike.
var UniqueRules = []UniqueRule{RuleNaturalKey, RuleEmail, RulePhone, RuleAccountNumber}

func (r UniqueRule) String() string {
	switch r {
	case RuleNaturalKey:
		return "natural_key"
	case RuleEmail:
		return "email_address"
	case RulePhone:
		return "phone_number"
	case RuleAccountNumber:
		return "account_number"
	}
	return "unknown"
}

func (r UniqueRule) IndexName() string {
	switch r {
	case RuleNaturalKey:
		return "unique_person_index"
	case RuleEmail:
		return "unique_email_address"
	case RulePhone:
		return "unique_phone_number"
	case RuleAccountNumber:
		return "unique_account_number"
	}
	return ""
}

func (r UniqueRule) Reason() string {
	switch r {
	case RuleNaturalKey:
		return "Person already registered"
	case RuleEmail:
		return "A record with this email address already exists"
	case RulePhone:
		return "A record with this phone number already exists"
	case RuleAccountNumber:
		return "A record with this bank account number already exists"
	}
	return "A record with these details already exists"
}

// Applicable reports whether the candidate carries every field the rule
// compares. Stored records always have them, so a candidate missing one
// cannot collide.
func (r UniqueRule) Applicable(c *Registration) bool {
	switch r {
	case RuleNaturalKey:
		return c.FirstName != "" && c.MiddleName != "" && c.Surname != "" && c.DateOfBirth != ""
	case RuleEmail:
		return c.EmailAddress != ""
	case RulePhone:
		return c.PhoneNumber != ""
	case RuleAccountNumber:
		return c.BankDetails.AccountNumber != ""
	}
	return false
}

// Matches compares two registrations under the rule.
func (r UniqueRule) Matches(a, b *Registration) bool {
	switch r {
	case RuleNaturalKey:
		return a.FirstName == b.FirstName &&
			a.MiddleName == b.MiddleName &&
			a.Surname == b.Surname &&
			a.DateOfBirth == b.DateOfBirth
	case RuleEmail:
		return a.EmailAddress == b.EmailAddress
	case RulePhone:
		return a.PhoneNumber == b.PhoneNumber
	case RuleAccountNumber:
		return a.BankDetails.AccountNumber == b.BankDetails.AccountNumber
	}
	return false
}

// RuleByIndexName maps a store-reported index or constraint name back to its
// rule.
func RuleByIndexName(name string) (UniqueRule, bool) {
	for _, rule := range UniqueRules {
		if rule.IndexName() == name {
			return rule, true
		}
	}
	return 0, false
}
