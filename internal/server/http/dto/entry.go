package dto

// EntryRequest describes a deposit/withdraw payload. Value is a pointer
// so that an explicit zero passes the required check.
type EntryRequest struct {
	Value *float64 `json:"value" binding:"required"`
	Title string   `json:"title" binding:"required"`
	Type  string   `json:"type" binding:"required,oneof=deposit withdraw"`
}

// EntryResponse is one rendered ledger line. Amount always carries two
// fractional digits; Date is formatted DD/MM.
type EntryResponse struct {
	SequenceID int64  `json:"sequence_id"`
	Title      string `json:"title"`
	Kind       string `json:"kind"`
	Amount     string `json:"amount"`
	Date       string `json:"date"`
}
