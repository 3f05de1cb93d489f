package collections

// Collection names.
const (
	Quotations = "quotations"
	Rates      = "rates"
)

// RateColumns maps a thickness key to its column in the rates collection.
var RateColumns = map[string]string{
	"19MM": "rate_19mm",
	"12MM": "rate_12mm",
	"9MM":  "rate_9mm",
	"6MM":  "rate_6mm",
}
