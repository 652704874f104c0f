package services

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"

	"github.com/iota-uz/billing-portal/modules/portal/domain/entities/invoice"
	"github.com/iota-uz/billing-portal/pkg/timezone"
)

const invoiceSheet = "Invoices"

type InvoiceServiceConfig struct {
	Repo           invoice.Repository
	PageSize       int
	ExportMaxPages int
}

type InvoiceService struct {
	repo           invoice.Repository
	pageSize       int
	exportMaxPages int
}

func NewInvoiceService(cfg InvoiceServiceConfig) *InvoiceService {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	if cfg.ExportMaxPages <= 0 {
		cfg.ExportMaxPages = 50
	}
	return &InvoiceService{
		repo:           cfg.Repo,
		pageSize:       cfg.PageSize,
		exportMaxPages: cfg.ExportMaxPages,
	}
}

func (s *InvoiceService) List(ctx context.Context, page int, search string) (invoice.Page, error) {
	if page < 1 {
		page = 1
	}
	res, err := s.repo.List(ctx, invoice.FindParams{
		Page:   page,
		Limit:  s.pageSize,
		Search: search,
	})
	if err != nil {
		return invoice.Page{}, errors.Wrapf(err, "list invoices page %d", page)
	}
	return res, nil
}

// Download returns the URL of the generated invoice file.
func (s *InvoiceService) Download(ctx context.Context, id string) (string, error) {
	url, err := s.repo.DownloadURL(ctx, id)
	if err != nil {
		return "", errors.Wrapf(err, "download invoice %s", id)
	}
	return url, nil
}

// All walks every page of the search, stopping after the export page limit.
func (s *InvoiceService) All(ctx context.Context, search string) ([]invoice.Invoice, error) {
	var all []invoice.Invoice
	for page := 1; page <= s.exportMaxPages; page++ {
		res, err := s.List(ctx, page, search)
		if err != nil {
			return nil, err
		}
		all = append(all, res.Collection...)
		if !res.Metadata.HasMore() {
			break
		}
	}
	return all, nil
}

type ExportOptions struct {
	Search    string
	Formatter timezone.Formatter
	// Headers are the localized column titles: number, date, type, status, payment status, currency, amount.
	Headers [7]string
	// Labels translates status values, missing keys are written as is.
	Labels map[string]string
}

// Export builds an XLSX workbook of every invoice matching the search.
// The caller owns the returned file and must close it.
func (s *InvoiceService) Export(ctx context.Context, opts ExportOptions) (*excelize.File, error) {
	invoices, err := s.All(ctx, opts.Search)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", invoiceSheet); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "rename sheet")
	}
	if err := writeInvoiceSheet(f, invoices, opts); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func writeInvoiceSheet(f *excelize.File, invoices []invoice.Invoice, opts ExportOptions) error {
	label := func(v string) string {
		if l, ok := opts.Labels[v]; ok {
			return l
		}
		return v
	}
	for col, header := range opts.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(invoiceSheet, cell, header); err != nil {
			return errors.Wrap(err, "write header")
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "create header style")
	}
	if err := f.SetCellStyle(invoiceSheet, "A1", "G1", bold); err != nil {
		return errors.Wrap(err, "style header")
	}

	for i, inv := range invoices {
		row := []any{
			inv.Number,
			opts.Formatter.Date(inv.IssuingDate),
			label(inv.InvoiceType),
			label(string(inv.Status)),
			label(string(inv.PaymentStatus)),
			inv.Currency,
			inv.Total().AsMajorUnits(),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(invoiceSheet, cell, &row); err != nil {
			return errors.Wrapf(err, "write invoice %s", inv.ID)
		}
	}
	if err := f.SetColWidth(invoiceSheet, "A", "G", 20); err != nil {
		return errors.Wrap(err, "set column width")
	}
	return nil
}
