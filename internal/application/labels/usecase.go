// Package labels genera etiquetas QR en PDF para el stock de una empresa.
// El QR codifica la URL de escaneo del frontend; la generación del documento
// queda detrás de un puerto para mantener maroto fuera de la aplicación.
package labels

import (
	"fmt"
	"time"

	"github.com/jhoicas/stockit-api/internal/domain"
	"github.com/jhoicas/stockit-api/internal/domain/repository"
)

// LabelData datos de una etiqueta: lo que se imprime y lo que codifica el QR.
type LabelData struct {
	ProductName string
	Reference   string
	EAN         string
	ScanURL     string
}

// LabelPDFGenerator puerto de render del PDF de etiquetas.
type LabelPDFGenerator interface {
	Generate(labels []LabelData) ([]byte, error)
	GenerateSingle(label LabelData) ([]byte, error)
}

// Document PDF listo para servir como attachment.
type Document struct {
	Filename string
	Content  []byte
}

// LabelUseCase arma las etiquetas desde las posiciones de la empresa.
type LabelUseCase struct {
	positions   repository.StockPositionRepository
	generator   LabelPDFGenerator
	scanBaseURL string
}

// NewLabelUseCase construye el caso de uso. scanBaseURL es la base del
// frontend, p. ej. https://app.example.com.
func NewLabelUseCase(positions repository.StockPositionRepository, generator LabelPDFGenerator, scanBaseURL string) *LabelUseCase {
	return &LabelUseCase{positions: positions, generator: generator, scanBaseURL: scanBaseURL}
}

// GenerateForCompany genera el PDF con una etiqueta por posición de la
// empresa. Retorna ErrNotFound si la empresa no tiene posiciones.
func (uc *LabelUseCase) GenerateForCompany(companyID int64) (*Document, error) {
	views, err := uc.positions.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, domain.ErrNotFound
	}
	data := make([]LabelData, 0, len(views))
	for _, v := range views {
		data = append(data, LabelData{
			ProductName: v.Product.Name,
			Reference:   v.Product.Reference,
			EAN:         v.Product.EAN,
			ScanURL:     uc.scanURL(v.ProductID),
		})
	}
	content, err := uc.generator.Generate(data)
	if err != nil {
		return nil, err
	}
	return &Document{
		Filename: fmt.Sprintf("qr-codes-stock-%d.pdf", time.Now().Unix()),
		Content:  content,
	}, nil
}

// GenerateForProduct genera el PDF de una sola etiqueta. Retorna ErrNotFound
// si la empresa no tiene posición para ese producto.
func (uc *LabelUseCase) GenerateForProduct(productID, companyID int64) (*Document, error) {
	view, err := uc.positions.GetView(productID, companyID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.ErrNotFound
	}
	content, err := uc.generator.GenerateSingle(LabelData{
		ProductName: view.Product.Name,
		Reference:   view.Product.Reference,
		EAN:         view.Product.EAN,
		ScanURL:     uc.scanURL(view.ProductID),
	})
	if err != nil {
		return nil, err
	}
	return &Document{
		Filename: fmt.Sprintf("qr-code-%d-%d.pdf", productID, time.Now().Unix()),
		Content:  content,
	}, nil
}

func (uc *LabelUseCase) scanURL(productID int64) string {
	return fmt.Sprintf("%s/scan/%d", uc.scanBaseURL, productID)
}
