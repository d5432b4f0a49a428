package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"marketstall/internal/domain"
)

type ProductWriter interface {
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads a seller's catalog export and creates the listings
// under that seller's identity subject.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
	ownerID     string
}

func NewCSVImporter(r io.Reader, repo ProductWriter, ownerID string) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
		ownerID:     ownerID,
	}
}

type csvRow struct {
	Name      string
	Desc      string
	SKU       string
	Cents     int64
	StorageID string
}

// Run parses CSV rows and creates a product per row. It returns the number
// of products created and stops at the first invalid row.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line++

		row := parseRow(record, index)
		if row == nil {
			continue
		}
		if err := i.save(ctx, row, line); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow, line int) error {
	if row.Name == "" {
		return fmt.Errorf("row %d: name is required", line)
	}
	if row.Cents < 0 {
		return fmt.Errorf("row %d: price must not be negative", line)
	}

	p := domain.Product{
		OwnerID:     i.ownerID,
		Name:        row.Name,
		Description: row.Desc,
		SKU:         row.SKU,
		PriceCents:  row.Cents,
	}
	if row.StorageID != "" {
		p.StorageID = &row.StorageID
	}

	if _, err := i.productRepo.Create(ctx, p); err != nil {
		return fmt.Errorf("create product %q: %w", row.Name, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *csvRow {
	name := pick(record, index, "name")
	desc := pick(record, index, "description")
	sku := pick(record, index, "sku")
	centStr := pick(record, index, "price_cents")
	storageID := pick(record, index, "storage_id")

	if name == "" && sku == "" && centStr == "" {
		return nil
	}

	var cents int64
	if centStr != "" {
		cents, _ = strconv.ParseInt(centStr, 10, 64)
	}

	return &csvRow{
		Name:      name,
		Desc:      desc,
		SKU:       sku,
		Cents:     cents,
		StorageID: storageID,
	}
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
