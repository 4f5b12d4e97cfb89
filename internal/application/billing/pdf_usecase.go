package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/freelance-pro/internal/domain"
	"github.com/tu-usuario/freelance-pro/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	userRepo    repository.UserRepository
	generator   PDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	userRepo repository.UserRepository,
	generator PDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, userRepo: userRepo, generator: generator}
}

// DownloadInvoicePDF recupera la factura con sus líneas y el perfil del
// emisor, y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe o no es del usuario.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, userID, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, userID, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	items, err := uc.invoiceRepo.GetItems(ctx, inv.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}

	issuer, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener emisor: %w", err)
	}

	pdfBytes, err = uc.generator.Generate(inv, items, issuer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("factura_%s.pdf", inv.InvoiceNumber)
	return pdfBytes, filename, nil
}
