package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/fajara33/rd-company/internal/domain/entity"
	"github.com/fajara33/rd-company/internal/domain/enum"
	"github.com/fajara33/rd-company/internal/domain/repository"
	"github.com/fajara33/rd-company/pkg/apperror"
	"github.com/fajara33/rd-company/pkg/format"
)

// ExpressRate is the nominal multiplier for expedited laundry turnaround.
// It is a price suggestion only: the operator can override the suggested
// price freely, and whatever price is submitted is what gets charged.
const ExpressRate = 1.5

const (
	laundryDetailTemplate = "LAYANAN: LAUNDRY\n" +
		"Pelanggan: %s\n" +
		"Tipe: %s\n" +
		"Paket: %s\n" +
		"Harga: %s / %s\n" +
		"Berat/Jml: %s %s"

	retailDetailTemplate = "LAYANAN: TOKO (RETAIL)\n" +
		"Barang: %s\n" +
		"Kategori: %s\n" +
		"Harga: %s"

	konterDetailTemplate = "LAYANAN: KONTER HP\n" +
		"Produk: %s\n" +
		"No. HP: %s\n" +
		"Harga: %s"

	expressLabel = "EXPRESS (1 Hari)"
	regularLabel = "REGULER (2-3 Hari)"
)

// POSService runs the three checkout flows. Each flow validates its input,
// prices the sale, writes exactly one ledger entry and (for item-backed
// flows) decrements stock by one. Validation failures abort before any write.
type POSService struct {
	stockRepo repository.StockRepository
	txRepo    repository.TransactionRepository
}

// NewPOSService creates a new POS service
func NewPOSService(stockRepo repository.StockRepository, txRepo repository.TransactionRepository) *POSService {
	return &POSService{stockRepo: stockRepo, txRepo: txRepo}
}

// ListLaundryServices returns the static laundry service catalog.
func (s *POSService) ListLaundryServices() []entity.LaundryService {
	return entity.LaundryServices
}

// SuggestPrice adjusts a unit price for the express toggle: 1.5x when
// switching express on, divided back when switching it off. Rounded to the
// nearest rupiah, half away from zero, so toggling on then off restores the
// original price up to rounding.
func (s *POSService) SuggestPrice(current int64, express bool) int64 {
	if express {
		return int64(math.Round(float64(current) * ExpressRate))
	}
	return int64(math.Round(float64(current) / ExpressRate))
}

// LaundryCheckoutInput represents the laundry checkout input
type LaundryCheckoutInput struct {
	CustomerName string
	ServiceID    string
	UnitPrice    int64
	Quantity     float64
	Express      bool
}

// LaundryCheckout prices a laundry order and appends it to the ledger.
// Total is ceil(unitPrice * quantity), always rounded up, never down.
// There is no stock side effect.
func (s *POSService) LaundryCheckout(ctx context.Context, input *LaundryCheckoutInput) (*entity.Receipt, error) {
	name := strings.TrimSpace(input.CustomerName)
	if name == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}
	if input.Quantity <= 0 || math.IsNaN(input.Quantity) || math.IsInf(input.Quantity, 0) {
		return nil, apperror.NewBadRequestError("Quantity must be a positive number")
	}
	if input.UnitPrice < 0 {
		return nil, apperror.NewBadRequestError("Unit price must not be negative")
	}

	svc := entity.FindLaundryService(input.ServiceID)
	if svc == nil {
		return nil, apperror.NewNotFoundError("Laundry service")
	}

	total := int64(math.Ceil(float64(input.UnitPrice) * input.Quantity))

	speedLabel := regularLabel
	if input.Express {
		speedLabel = expressLabel
	}

	detail := fmt.Sprintf(laundryDetailTemplate,
		name,
		svc.Name,
		speedLabel,
		format.Rupiah(input.UnitPrice), svc.Unit,
		format.Quantity(input.Quantity), svc.Unit,
	)

	tx := &entity.Transaction{
		Type:          enum.TransactionLaundry,
		Detail:        detail,
		Total:         total,
		CustomerPhone: "-",
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return entity.NewReceipt(tx), nil
}

// RetailCheckout sells one unit of a retail item: stock is checked, the
// quantity is decremented by exactly one and a single ledger entry is written
// with the item's current price.
func (s *POSService) RetailCheckout(ctx context.Context, itemID string) (*entity.Receipt, error) {
	item, err := s.sellableItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.SoldAtRetail() {
		return nil, apperror.NewBadRequestError("Phone-credit products are sold through the konter flow")
	}

	if err := s.stockRepo.AdjustQuantity(ctx, item.ID, -1); err != nil {
		return nil, err
	}

	detail := fmt.Sprintf(retailDetailTemplate,
		item.Name,
		item.Category,
		format.Rupiah(item.Price),
	)

	tx := &entity.Transaction{
		Type:   enum.TransactionRetail,
		Detail: detail,
		Total:  item.Price,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return entity.NewReceipt(tx), nil
}

// KonterCheckout sells one unit of a phone-credit product to the given phone
// number. The number is free text; no format validation is applied.
func (s *POSService) KonterCheckout(ctx context.Context, phoneNumber, itemID string) (*entity.Receipt, error) {
	phone := strings.TrimSpace(phoneNumber)
	if phone == "" {
		return nil, apperror.NewBadRequestError("Phone number is required")
	}

	item, err := s.sellableItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Category != enum.CategoryPhoneCounter {
		return nil, apperror.NewBadRequestError("Item is not a phone-credit product")
	}

	if err := s.stockRepo.AdjustQuantity(ctx, item.ID, -1); err != nil {
		return nil, err
	}

	detail := fmt.Sprintf(konterDetailTemplate,
		item.Name,
		phone,
		format.Rupiah(item.Price),
	)

	tx := &entity.Transaction{
		Type:          enum.TransactionKonter,
		Detail:        detail,
		Total:         item.Price,
		CustomerPhone: phone,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return entity.NewReceipt(tx), nil
}

// ListTransactions returns the full ledger in insertion order.
func (s *POSService) ListTransactions(ctx context.Context) ([]entity.Transaction, error) {
	return s.txRepo.List(ctx)
}

// sellableItem resolves an item and enforces the shared stock precondition.
func (s *POSService) sellableItem(ctx context.Context, itemID string) (*entity.StockItem, error) {
	if itemID == "" {
		return nil, apperror.NewBadRequestError("Item selection is required")
	}
	item, err := s.stockRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Stock item")
	}
	if !item.InStock() {
		return nil, apperror.ErrOutOfStock
	}
	return item, nil
}
