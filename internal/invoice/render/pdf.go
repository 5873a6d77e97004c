package render

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/smallbiznis/panorama/internal/invoice/domain"
)

const ContentTypePDF = "application/pdf"

const (
	issueDateLayout = "02 Jan 2006"
	missingName     = "-"
)

// Renderer turns a stored invoice into a printable document.
type Renderer interface {
	Render(ctx context.Context, invoice domain.InvoiceDetail) ([]byte, error)
}

type PDFRenderer struct{}

func NewPDFRenderer() Renderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(ctx context.Context, invoice domain.InvoiceDetail) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(8, nameOr(invoice.CompanyName), props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(4, "Invoice", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	)

	m.AddRow(20,
		col.New(6).Add(
			text.New("Invoice number: "+invoice.InvoiceNo, props.Text{Top: 0}),
			text.New("Date of issue: "+invoice.IssueDate.Format(issueDateLayout), props.Text{Top: 5}),
		),
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold, Align: align.Right}),
			text.New(nameOr(invoice.ClientName), props.Text{Top: 5, Align: align.Right}),
		),
	)

	m.AddRow(14,
		col.New(6).Add(
			text.New("Project", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.New(nameOr(invoice.ProjectName), props.Text{Top: 5, Size: 9}),
		),
		col.New(6).Add(
			text.New("Consultant", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.New(nameOr(invoice.EmployeeName), props.Text{Top: 5, Size: 9}),
		),
	)

	m.AddRow(10,
		text.NewCol(8, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(4, "Quantity", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	m.AddRow(2, line.NewCol(12))

	for _, item := range lineItems(invoice.Invoice) {
		m.AddRow(8,
			text.NewCol(8, item.label, props.Text{Size: 9}),
			text.NewCol(4, formatQuantity(item.value), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(2, line.NewCol(12))
	m.AddRow(10,
		col.New(6),
		text.NewCol(3, "Amount due", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(3, formatAmount(invoice.TotalAmount), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

// FileName derives a download name from the invoice number, falling back to
// the id when the number slugs to nothing.
func FileName(invoice domain.Invoice) string {
	name := slug.Make(invoice.InvoiceNo)
	if name == "" {
		name = fmt.Sprintf("invoice-%d", invoice.ID)
	}
	return name + ".pdf"
}

type lineItem struct {
	label string
	value float64
}

func lineItems(invoice domain.Invoice) []lineItem {
	return []lineItem{
		{label: "Days worked", value: invoice.Days},
		{label: "Paid leaves", value: invoice.PaidLeaves},
		{label: "Unpaid leaves", value: invoice.UnpaidLeaves},
		{label: "Overtime", value: invoice.OverTime},
	}
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func nameOr(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return missingName
	}
	return *v
}
