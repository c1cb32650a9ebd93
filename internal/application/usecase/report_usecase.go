package usecase

import (
	"context"

	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
)

// CatalogPDFGenerator es el puerto de generación del reporte PDF del catálogo.
// La implementación concreta usa Maroto; para tests se inyecta un stub.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, products []entity.Product) ([]byte, error)
}

// ReportUseCase exporta el catálogo de productos como PDF (página de reportes).
type ReportUseCase struct {
	products ProductsListAPI
	pdf      CatalogPDFGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(products ProductsListAPI, pdf CatalogPDFGenerator) *ReportUseCase {
	return &ReportUseCase{products: products, pdf: pdf}
}

// CatalogPDF trae el catálogo vigente y lo renderiza.
func (uc *ReportUseCase) CatalogPDF(ctx context.Context) ([]byte, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateCatalogPDF(ctx, products)
}
