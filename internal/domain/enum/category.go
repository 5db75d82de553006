package enum

// Category is a stock item category. The Indonesian labels are the persisted
// wire values, so existing stored data keeps reading back unchanged.
type Category string

const (
	CategoryClothing     Category = "Baju"
	CategoryBags         Category = "Tas"
	CategoryAccessories  Category = "Aksesoris"
	CategoryPhoneCounter Category = "Konter HP"
	CategoryVoucher      Category = "Voucher"
	CategoryOther        Category = "Lainnya"
)

// Categories returns all selectable categories in display order.
func Categories() []Category {
	return []Category{
		CategoryClothing,
		CategoryBags,
		CategoryAccessories,
		CategoryPhoneCounter,
		CategoryVoucher,
		CategoryOther,
	}
}

func (c Category) Valid() bool {
	for _, cat := range Categories() {
		if c == cat {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
