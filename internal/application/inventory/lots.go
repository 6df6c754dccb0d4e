package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/domain"
	"github.com/samka/gestion-api/internal/domain/entity"
	"github.com/samka/gestion-api/internal/domain/inventory"
	"github.com/samka/gestion-api/internal/domain/repository"
)

// LotUseCase ingreso, consulta y eliminación de lotes, y vista general del inventario.
type LotUseCase struct {
	productRepo repository.ProductRepository
	lotRepo     repository.LotRepository
	loc         *time.Location
	nearDays    int
	now         func() time.Time
}

// NewLotUseCase construye el caso de uso. nearDays es la ventana de "por vencer".
func NewLotUseCase(productRepo repository.ProductRepository, lotRepo repository.LotRepository, loc *time.Location, nearDays int) *LotUseCase {
	return &LotUseCase{
		productRepo: productRepo,
		lotRepo:     lotRepo,
		loc:         loc,
		nearDays:    nearDays,
		now:         time.Now,
	}
}

// Create registra un lote nuevo para un producto existente.
func (uc *LotUseCase) Create(ctx context.Context, in dto.CreateLotRequest) (*dto.LotResponse, error) {
	in.LotNumber = strings.TrimSpace(in.LotNumber)
	if in.ProductID == "" || in.LotNumber == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	expiresOn, err := dto.ParseDate(in.ExpiresOn)
	if err != nil {
		return nil, err
	}
	manufacturedOn, err := dto.ParseOptionalDate(in.ManufacturedOn)
	if err != nil {
		return nil, err
	}
	if manufacturedOn != nil && manufacturedOn.After(expiresOn) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	lot := &entity.Lot{
		ID:             uuid.New().String(),
		ProductID:      product.ID,
		LotNumber:      in.LotNumber,
		ManufacturedOn: manufacturedOn,
		ExpiresOn:      expiresOn,
		Quantity:       in.Quantity,
		CreatedAt:      uc.now(),
	}
	if err := uc.lotRepo.Create(ctx, lot); err != nil {
		return nil, err
	}
	resp := uc.toLotResponse(*lot, uc.today())
	return &resp, nil
}

// ListByProduct lotes del producto ordenados por vencimiento.
func (uc *LotUseCase) ListByProduct(ctx context.Context, productID string) ([]dto.LotResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	lots, err := uc.lotRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	today := uc.today()
	out := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		out = append(out, uc.toLotResponse(l, today))
	}
	return out, nil
}

// Delete elimina un lote por ID.
func (uc *LotUseCase) Delete(ctx context.Context, id string) error {
	lot, err := uc.lotRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lot == nil {
		return domain.ErrNotFound
	}
	return uc.lotRepo.Delete(ctx, id)
}

// Overview todos los productos con su stock total, marca de stock bajo y lotes.
func (uc *LotUseCase) Overview(ctx context.Context) (*dto.InventoryOverviewResponse, error) {
	products, lotsByProduct, err := loadStock(ctx, uc.productRepo, uc.lotRepo)
	if err != nil {
		return nil, err
	}
	today := uc.today()
	resp := &dto.InventoryOverviewResponse{
		Items:       make([]dto.ProductStockDTO, 0, len(products)),
		GeneratedOn: dto.FormatDate(today),
	}
	for _, p := range products {
		lots := lotsByProduct[p.ID]
		item := dto.ProductStockDTO{
			Product: ToProductResponse(p, inventory.TotalStock(lots)),
			Lots:    make([]dto.LotResponse, 0, len(lots)),
		}
		for _, l := range lots {
			item.Lots = append(item.Lots, uc.toLotResponse(l, today))
		}
		if item.Product.LowStock {
			resp.LowStockCount++
		}
		resp.Items = append(resp.Items, item)
	}
	return resp, nil
}

func (uc *LotUseCase) today() time.Time {
	return dateIn(uc.now(), uc.loc)
}

func (uc *LotUseCase) toLotResponse(l entity.Lot, today time.Time) dto.LotResponse {
	days := inventory.DaysUntilExpiry(l.ExpiresOn, today)
	return dto.LotResponse{
		ID:              l.ID,
		ProductID:       l.ProductID,
		LotNumber:       l.LotNumber,
		ManufacturedOn:  dto.FormatOptionalDate(l.ManufacturedOn),
		ExpiresOn:       dto.FormatDate(l.ExpiresOn),
		Quantity:        l.Quantity,
		DaysUntilExpiry: days,
		Status:          string(inventory.StatusForDays(days, uc.nearDays)),
	}
}

// loadStock lee todos los productos y agrupa sus lotes (ya ordenados por vencimiento).
func loadStock(ctx context.Context, productRepo repository.ProductRepository, lotRepo repository.LotRepository) ([]*entity.Product, map[string][]entity.Lot, error) {
	products, err := productRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, nil, err
	}
	lots, err := lotRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	byProduct := make(map[string][]entity.Lot, len(products))
	for _, l := range lots {
		byProduct[l.ProductID] = append(byProduct[l.ProductID], l)
	}
	for id := range byProduct {
		inventory.SortByExpiry(byProduct[id])
	}
	return products, byProduct, nil
}

// ToProductResponse convierte la entidad y marca stock bajo (total < mínimo).
func ToProductResponse(p *entity.Product, totalStock int) dto.ProductResponse {
	return dto.ProductResponse{
		ID:         p.ID,
		Code:       p.Code,
		Name:       p.Name,
		Category:   p.Category,
		MinStock:   p.MinStock,
		TotalStock: totalStock,
		LowStock:   totalStock < p.MinStock,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
