package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/smallbiznis/panorama/internal/invoice/domain"
)

type invoiceRequest struct {
	InvoiceNo    string   `json:"invoice_no"`
	ProjectID    int64    `json:"project_id"`
	IssueDate    *string  `json:"issue_date"`
	TotalAmount  *float64 `json:"total_amount"`
	Days         *float64 `json:"days"`
	PaidLeaves   *float64 `json:"paid_leaves"`
	UnpaidLeaves *float64 `json:"unpaid_leaves"`
	OverTime     *float64 `json:"over_time"`
}

func (r invoiceRequest) input() (invoicedomain.InvoiceInput, error) {
	issueDate, err := parseOptionalTime(r.IssueDate)
	if err != nil {
		return invoicedomain.InvoiceInput{}, err
	}
	return invoicedomain.InvoiceInput{
		InvoiceNo:    r.InvoiceNo,
		ProjectID:    r.ProjectID,
		IssueDate:    issueDate,
		TotalAmount:  r.TotalAmount,
		Days:         r.Days,
		PaidLeaves:   r.PaidLeaves,
		UnpaidLeaves: r.UnpaidLeaves,
		OverTime:     r.OverTime,
	}, nil
}

func (s *Server) bindInvoice(c *gin.Context) (invoicedomain.InvoiceInput, bool) {
	var req invoiceRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, errInvalidBody)
		return invoicedomain.InvoiceInput{}, false
	}
	input, err := req.input()
	if err != nil {
		AbortWithError(c, err)
		return invoicedomain.InvoiceInput{}, false
	}
	return input, true
}

func (s *Server) CreateInvoice(c *gin.Context) {
	input, ok := s.bindInvoice(c)
	if !ok {
		return
	}

	invoice, err := s.invoiceSvc.Create(c.Request.Context(), input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Invoice created successfully",
		"invoice": invoice,
	})
}

func (s *Server) ListInvoices(c *gin.Context) {
	invoices, err := s.invoiceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if len(invoices) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message":  "No invoices found.",
			"invoices": invoices,
		})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (s *Server) GetInvoiceByID(c *gin.Context) {
	id, err := parseID(c, invoicedomain.ErrInvalidID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	invoice, err := s.invoiceSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	id, err := parseID(c, invoicedomain.ErrInvalidID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	input, ok := s.bindInvoice(c)
	if !ok {
		return
	}

	invoice, err := s.invoiceSvc.Update(c.Request.Context(), id, input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Invoice updated successfully",
		"invoice": invoice,
	})
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	id, err := parseID(c, invoicedomain.ErrInvalidID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.invoiceSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully."})
}

func (s *Server) DownloadInvoicePDF(c *gin.Context) {
	id, err := parseID(c, invoicedomain.ErrInvalidID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := s.invoiceSvc.RenderPDF(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.FileName))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}
