package domain

type Bank struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Status string `json:"status"`
}

// BankIndex resolves banks by id for enrichment.
type BankIndex map[string]*Bank

func NewBankIndex(banks []Bank) BankIndex {
	index := make(BankIndex, len(banks))
	for i := range banks {
		index[banks[i].ID] = &banks[i]
	}
	return index
}

// Get returns nil for an empty or unknown id.
func (idx BankIndex) Get(bankID *string) *Bank {
	if bankID == nil || *bankID == "" {
		return nil
	}
	return idx[*bankID]
}
