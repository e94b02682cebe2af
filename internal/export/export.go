// Package export writes the report tables to CSV the way the back office
// prints them: fixed category columns, two-decimal amounts, and a closing
// TOTAL line folded from the rows above it.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"sjtech/spicon-recon/internal/categorizer"
	"sjtech/spicon-recon/internal/reports"
	"sjtech/spicon-recon/internal/workerledger"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Delimiter is the CSV output delimiter, configurable from the application
// config.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// TotalLabel marks the closing line of every exported table.
const TotalLabel = "TOTAL"

type abstractCSV struct {
	Key        string `csv:"Group"`
	Registered int    `csv:"Registrations"`
	Families   int    `csv:"Family"`
	Employed   int    `csv:"Single Graduate (Employed)"`
	Unemployed int    `csv:"Single Graduate (Unemployed)"`
	Children   int    `csv:"Graduates' children (15+)"`
	Students   int    `csv:"Students"`
	Volunteers int    `csv:"Volunteers"`
	Other      int    `csv:"Other"`
	People     int    `csv:"Total People"`
	Expected   string `csv:"Expected"`
	Paid       string `csv:"Paid"`
	Balance    string `csv:"Balance"`
}

// WriteAbstract writes a registrant abstract table, district or place keyed.
func WriteAbstract(report reports.AbstractReport, path string) error {
	rows := make([]abstractCSV, 0, len(report.Rows)+1)
	for _, row := range report.Rows {
		out := abstractCSV{
			Key:        row.Key,
			Registered: row.Registrations,
			People:     row.TotalPeople,
			Expected:   strconv.FormatInt(row.TotalExpected, 10),
			Paid:       money(row.TotalPaid),
			Balance:    money(row.Balance()),
		}
		spreadCategories(row.Categories, &out)
		rows = append(rows, out)
	}
	rows = append(rows, abstractCSV{
		Key:        TotalLabel,
		Registered: report.Registrations,
		People:     report.TotalPeople,
		Expected:   strconv.FormatInt(report.TotalExpected, 10),
		Paid:       money(report.TotalPaid),
		Balance:    money(decimal.NewFromInt(report.TotalExpected).Sub(report.TotalPaid)),
	})
	return writeCSV(rows, path)
}

type collectionCSV struct {
	District string `csv:"District"`
	Payments int    `csv:"Payments"`
	People   int    `csv:"Total People"`
	Amount   string `csv:"Amount"`
}

// WriteCollections writes the district payment-collection table.
func WriteCollections(report reports.CollectionReport, path string) error {
	rows := make([]collectionCSV, 0, len(report.Rows)+1)
	for _, row := range report.Rows {
		rows = append(rows, collectionCSV{
			District: row.District,
			Payments: row.Payments,
			People:   row.TotalPeople,
			Amount:   money(row.Amount),
		})
	}
	rows = append(rows, collectionCSV{
		District: TotalLabel,
		Payments: report.Payments,
		People:   report.TotalPeople,
		Amount:   money(report.Amount),
	})
	return writeCSV(rows, path)
}

type categoryCSV struct {
	Category  string `csv:"Category"`
	Count     int    `csv:"Payments"`
	Collected string `csv:"Collected"`
	Expected  string `csv:"Expected"`
	Pending   string `csv:"Pending"`
}

// WriteCategorySummary writes the per-category payment summary.
func WriteCategorySummary(report reports.CategoryReport, path string) error {
	rows := make([]categoryCSV, 0, len(report.Rows)+1)
	for _, row := range report.Rows {
		rows = append(rows, categoryCSV{
			Category:  string(row.Category),
			Count:     row.Count,
			Collected: money(row.Collected),
			Expected:  money(row.Expected),
			Pending:   money(row.Pending()),
		})
	}
	rows = append(rows, categoryCSV{
		Category:  TotalLabel,
		Count:     report.Count,
		Collected: money(report.Collected),
		Expected:  money(report.Expected),
		Pending:   money(report.Expected.Sub(report.Collected)),
	})
	return writeCSV(rows, path)
}

type attendanceCSV struct {
	Region     string `csv:"Region"`
	District   string `csv:"District"`
	Registered int    `csv:"Registered"`
	Attending  int    `csv:"Attending"`
	Male       int    `csv:"Male"`
	Female     int    `csv:"Female"`
	Other      int    `csv:"Other"`
}

// WriteAttendance writes the district attendance roll-up with a TOTAL line.
func WriteAttendance(report reports.AttendanceReport, path string) error {
	var rows []attendanceCSV
	for _, region := range report.Regions {
		for _, district := range region.Districts {
			rows = append(rows, attendanceCSV{
				Region:     region.Region,
				District:   district.District,
				Registered: district.Registered,
				Attending:  district.Attending,
				Male:       district.Genders.Male,
				Female:     district.Genders.Female,
				Other:      district.Genders.Other,
			})
		}
	}
	rows = append(rows, attendanceCSV{
		Region:     TotalLabel,
		Registered: report.Registered,
		Attending:  report.Attending,
		Male:       report.Genders.Male,
		Female:     report.Genders.Female,
		Other:      report.Genders.Other,
	})
	return writeCSV(rows, path)
}

type treasurerCSV struct {
	Name          string `csv:"Name"`
	UniqueID      string `csv:"Unique ID"`
	GroupType     string `csv:"Group Type"`
	TransactionID string `csv:"Transaction ID"`
	PaymentDate   string `csv:"Payment Date"`
	TotalAmount   string `csv:"Total Amount"`
	AmountPaid    string `csv:"Amount Paid"`
	Balance       string `csv:"Balance"`
}

// WriteTreasurer writes the treasurer day book.
func WriteTreasurer(report reports.TreasurerReport, path string) error {
	rows := make([]treasurerCSV, 0, len(report.Rows)+1)
	for _, row := range report.Rows {
		date := ""
		if row.HasDate {
			date = row.PaymentDate.Format("2006-01-02")
		}
		rows = append(rows, treasurerCSV{
			Name:          row.Name,
			UniqueID:      row.UniqueID,
			GroupType:     row.GroupType,
			TransactionID: row.TransactionID,
			PaymentDate:   date,
			TotalAmount:   money(row.TotalAmount),
			AmountPaid:    money(row.AmountPaid),
			Balance:       money(row.Balance),
		})
	}
	rows = append(rows, treasurerCSV{
		Name:        TotalLabel,
		TotalAmount: money(report.TotalAmount),
		AmountPaid:  money(report.AmountPaid),
		Balance:     money(report.Balance),
	})
	return writeCSV(rows, path)
}

type ledgerCSV struct {
	Title     string `csv:"Title"`
	Type      string `csv:"Type"`
	Method    string `csv:"Method"`
	Status    string `csv:"Status"`
	CreatedAt string `csv:"Created At"`
	Amount    string `csv:"Amount"`
}

// WriteWorkerLedger writes the worker transaction ledger. The TOTAL line
// carries the net amount sent out of the region.
func WriteWorkerLedger(ledger workerledger.Ledger, path string) error {
	rows := make([]ledgerCSV, 0, len(ledger.Transactions)+1)
	for _, tx := range ledger.Transactions {
		rows = append(rows, ledgerCSV{
			Title:     tx.Title,
			Type:      tx.Type,
			Method:    tx.Method,
			Status:    tx.Status,
			CreatedAt: tx.CreatedAt,
			Amount:    money(tx.Amount),
		})
	}
	rows = append(rows, ledgerCSV{
		Title:  TotalLabel,
		Type:   "NET",
		Amount: money(ledger.NetSent()),
	})
	return writeCSV(rows, path)
}

// spreadCategories fills the fixed category columns; categories outside the
// published list fold into Other.
func spreadCategories(counts map[categorizer.Category]int, out *abstractCSV) {
	for category, count := range counts {
		switch category {
		case categorizer.Family:
			out.Families += count
		case categorizer.SingleGraduateEmployed:
			out.Employed += count
		case categorizer.SingleGraduateUnemployed:
			out.Unemployed += count
		case categorizer.GraduateChildren15Plus:
			out.Children += count
		case categorizer.Students:
			out.Students += count
		case categorizer.Volunteers:
			out.Volunteers += count
		default:
			out.Other += count
		}
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func writeCSV[T any](rows []T, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(rows),
	}).Info("Wrote report CSV")
	return nil
}
