package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockit-api/internal/application/dto"
	"github.com/jhoicas/stockit-api/internal/application/labels"
	"github.com/jhoicas/stockit-api/internal/domain"
)

// PDFHandler sirve los PDFs de etiquetas QR como attachment.
type PDFHandler struct {
	uc *labels.LabelUseCase
}

// NewPDFHandler construye el handler.
func NewPDFHandler(uc *labels.LabelUseCase) *PDFHandler {
	return &PDFHandler{uc: uc}
}

// QRCodes godoc
// @Summary      Descargar PDF con los códigos QR del stock de la empresa
// @Tags         pdf
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pdf/qr-codes [get]
func (h *PDFHandler) QRCodes(c *fiber.Ctx) error {
	doc, err := h.uc.GenerateForCompany(GetCompanyID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la empresa no tiene posiciones de stock"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendPDF(c, doc)
}

// QRCode godoc
// @Summary      Descargar PDF con el código QR de un producto
// @Tags         pdf
// @Security     Bearer
// @Produce      application/pdf
// @Param        productId  path  int  true  "ID del producto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pdf/qr-codes/{productId} [get]
func (h *PDFHandler) QRCode(c *fiber.Ctx) error {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "productId debe ser numérico"})
	}
	doc, err := h.uc.GenerateForProduct(productID, GetCompanyID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "posición no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendPDF(c, doc)
}

func sendPDF(c *fiber.Ctx, doc *labels.Document) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return c.Send(doc.Content)
}
