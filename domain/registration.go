package domain

import (
	"context"
	"time"
)

// TimestampPrecision is the finest resolution every store keeps for
// created_at and updated_at; mongo stores milliseconds.
const TimestampPrecision = time.Millisecond

// Timestamp brings t to UTC at store precision, so a written record reads
// back unchanged.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(TimestampPrecision)
}

type BankDetails struct {
	BankName      string `bson:"bank_name" json:"bank_name" gorm:"type:varchar(150);not null" valid:"required~Bank name is required"`
	AccountName   string `bson:"account_name" json:"account_name" gorm:"type:varchar(150);not null" valid:"required~Account name is required"`
	AccountNumber string `bson:"account_number" json:"account_number" gorm:"type:varchar(20);not null;uniqueIndex:unique_account_number" valid:"required~Account number is required"`
}

// Registration is one registrant's record. The same struct is stored as a
// mongo document and as a gorm row.
type Registration struct {
	ID             string      `bson:"_id" json:"id" gorm:"primaryKey;type:varchar(36)"`
	FirstName      string      `bson:"first_name" json:"first_name" gorm:"type:varchar(150);not null;uniqueIndex:unique_person_index,priority:1" valid:"required~First name is required"`
	MiddleName     string      `bson:"middle_name" json:"middle_name" gorm:"type:varchar(150);not null;uniqueIndex:unique_person_index,priority:2" valid:"required~Middle name is required"`
	Surname        string      `bson:"surname" json:"surname" gorm:"type:varchar(150);not null;uniqueIndex:unique_person_index,priority:3" valid:"required~Surname is required"`
	Gender         string      `bson:"gender" json:"gender" gorm:"type:varchar(6);not null" valid:"required~Gender is required,in(Male|Female)~Gender must be Male or Female"`
	MaritalStatus  string      `bson:"marital_status" json:"marital_status" gorm:"type:varchar(7);not null" valid:"required~Marital status is required,in(Married|Single|Widow)~Marital status must be Married or Single or Widow"`
	DateOfBirth    string      `bson:"date_of_birth" json:"date_of_birth" gorm:"type:varchar(10);not null;uniqueIndex:unique_person_index,priority:4" valid:"required~Date of birth is required,isodate~Date of birth must be a YYYY-MM-DD date"`
	State          string      `bson:"state" json:"state" gorm:"type:varchar(100);not null" valid:"required~State is required"`
	LGA            string      `bson:"lga" json:"lga" gorm:"column:lga;type:varchar(100);not null" valid:"required~LGA is required"`
	Ward           string      `bson:"ward" json:"ward" gorm:"type:varchar(100);not null" valid:"required~Ward is required"`
	EmailAddress   string      `bson:"email_address" json:"email_address" gorm:"type:varchar(255);not null;uniqueIndex:unique_email_address" valid:"required~Email address is required,email~Email address is invalid"`
	PhoneNumber    string      `bson:"phone_number" json:"phone_number" gorm:"type:varchar(20);not null;uniqueIndex:unique_phone_number" valid:"required~Phone number is required"`
	YearOfMusabaqa int         `bson:"year_of_musabaqa" json:"year_of_musabaqa" gorm:"not null;index" valid:"required~Year of musabaqa is required,musabaqayear~Year of musabaqa must be between 1900 and the current year"`
	HomeAddress    string      `bson:"home_address" json:"home_address" gorm:"type:text;not null" valid:"required~Home address is required"`
	BankDetails    BankDetails `bson:"bank_details" json:"bank_details" gorm:"embedded;embeddedPrefix:bank_details_"`
	CreatedAt      time.Time   `bson:"created_at" json:"created_at" gorm:"index"`
	UpdatedAt      time.Time   `bson:"updated_at" json:"updated_at"`
}

type BankDetailsPatch struct {
	BankName      *string `json:"bank_name"`
	AccountName   *string `json:"account_name"`
	AccountNumber *string `json:"account_number"`
}

// RegistrationPatch carries the fields of an update; nil fields are left as
// they are.
type RegistrationPatch struct {
	FirstName      *string           `json:"first_name"`
	MiddleName     *string           `json:"middle_name"`
	Surname        *string           `json:"surname"`
	Gender         *string           `json:"gender"`
	MaritalStatus  *string           `json:"marital_status"`
	DateOfBirth    *string           `json:"date_of_birth"`
	State          *string           `json:"state"`
	LGA            *string           `json:"lga"`
	Ward           *string           `json:"ward"`
	EmailAddress   *string           `json:"email_address"`
	PhoneNumber    *string           `json:"phone_number"`
	YearOfMusabaqa *int              `json:"year_of_musabaqa"`
	HomeAddress    *string           `json:"home_address"`
	BankDetails    *BankDetailsPatch `json:"bank_details"`
}

type Statistics struct {
	TotalEntries int `json:"totalEntries"`
	MaleCount    int `json:"maleCount"`
	FemaleCount  int `json:"femaleCount"`
}

type RegistrationList struct {
	Entries    []Registration `json:"entries"`
	Statistics Statistics     `json:"statistics"`
}

type DuplicateReport struct {
	IsDuplicate bool     `json:"isDuplicate"`
	Message     string   `json:"message,omitempty"`
	Reasons     []string `json:"reasons,omitempty"`
}

// ImportRow is one parsed line of a bulk upload. Line is the 1-based line in
// the source file and is only used for reporting. A row with a Problem could
// not be read and is reported instead of created.
type ImportRow struct {
	Line         int
	Registration Registration
	Problem      string
}

type ImportResult struct {
	Created    int      `json:"created"`
	Duplicates []string `json:"duplicates"`
}

type RegistrationRepo interface {
	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id string) (*Registration, error)
	Update(ctx context.Context, reg *Registration) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Registration, error)
	ExistsByRule(ctx context.Context, rule UniqueRule, candidate *Registration, excludeID string) (bool, error)
	Ping(ctx context.Context) error
}

type RegistrationUseCase interface {
	CheckDuplicate(ctx context.Context, candidate *Registration) (*DuplicateReport, error)
	Create(ctx context.Context, candidate *Registration) (*Registration, error)
	GetByID(ctx context.Context, id string) (*Registration, error)
	Update(ctx context.Context, id string, patch *RegistrationPatch) (*Registration, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) (*RegistrationList, error)
	Import(ctx context.Context, rows []ImportRow) (*ImportResult, error)
	Healthy(ctx context.Context) error
}
