package entity

// LaundryService is one entry of the static laundry service catalog. The
// catalog is configuration, not persisted data: BasePrice only pre-fills the
// price field at the POS, and the charged price is whatever the operator
// confirms at submission time.
type LaundryService struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BasePrice int64  `json:"basePrice"`
	Unit      string `json:"unit"`
}

// LaundryServices is the fixed service catalog in display order.
var LaundryServices = []LaundryService{
	{ID: "komplit", Name: "Cuci Komplit (Cuci+Gosok)", BasePrice: 6000, Unit: "Kg"},
	{ID: "basah", Name: "Cuci Basah", BasePrice: 4000, Unit: "Kg"},
	{ID: "kering", Name: "Cuci Kering (Lipat)", BasePrice: 5000, Unit: "Kg"},
	{ID: "setrika", Name: "Setrika Saja", BasePrice: 4000, Unit: "Kg"},
	{ID: "bedcover", Name: "Bed Cover (Satuan)", BasePrice: 25000, Unit: "Pcs"},
	{ID: "karpet", Name: "Karpet (Per Meter)", BasePrice: 15000, Unit: "Mtr"},
	{ID: "lainnya", Name: "Lainnya", BasePrice: 0, Unit: "Pcs"},
}

// FindLaundryService resolves a catalog entry by id, nil if unknown.
func FindLaundryService(id string) *LaundryService {
	for i := range LaundryServices {
		if LaundryServices[i].ID == id {
			return &LaundryServices[i]
		}
	}
	return nil
}
