package delivery

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"musabaqa/domain"
)

// csvHeader is both the download template and the set of columns an upload
// must carry. Column order in uploads is free.
var csvHeader = []string{
	"first_name",
	"middle_name",
	"surname",
	"gender",
	"marital_status",
	"date_of_birth",
	"state",
	"lga",
	"ward",
	"email_address",
	"phone_number",
	"year_of_musabaqa",
	"home_address",
	"bank_name",
	"account_name",
	"account_number",
}

var errEmptyCSV = errors.New("empty CSV file")

func templateCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// parseRegistrationCSV reads an upload into import rows. Rows whose values
// cannot be converted carry a Problem instead of a registration; field level
// validation is left to the use case.
func parseRegistrationCSV(r io.Reader) ([]domain.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyCSV
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range csvHeader {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var rows []domain.ImportRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV file: %w", err)
		}
		line, _ := reader.FieldPos(0)

		get := func(col string) string {
			if i := index[col]; i < len(record) {
				return record[i]
			}
			return ""
		}

		if isBlankRecord(record) {
			continue
		}

		year := 0
		if v := strings.TrimSpace(get("year_of_musabaqa")); v != "" {
			year, err = strconv.Atoi(v)
			if err != nil {
				rows = append(rows, domain.ImportRow{
					Line:    line,
					Problem: fmt.Sprintf("year_of_musabaqa %q is not a number", v),
				})
				continue
			}
		}

		rows = append(rows, domain.ImportRow{
			Line: line,
			Registration: domain.Registration{
				FirstName:      get("first_name"),
				MiddleName:     get("middle_name"),
				Surname:        get("surname"),
				Gender:         get("gender"),
				MaritalStatus:  get("marital_status"),
				DateOfBirth:    get("date_of_birth"),
				State:          get("state"),
				LGA:            get("lga"),
				Ward:           get("ward"),
				EmailAddress:   get("email_address"),
				PhoneNumber:    get("phone_number"),
				YearOfMusabaqa: year,
				HomeAddress:    get("home_address"),
				BankDetails: domain.BankDetails{
					BankName:      get("bank_name"),
					AccountName:   get("account_name"),
					AccountNumber: get("account_number"),
				},
			},
		})
	}

	return rows, nil
}

func isBlankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
