package paymentdto

type OrderOutput struct {
	OrderID  string
	Amount   int64
	Currency string
	Reused   bool
}

type VerifyOutput struct {
	Status string
}

type WebhookOutput struct {
	Status  string
	Applied bool
}
