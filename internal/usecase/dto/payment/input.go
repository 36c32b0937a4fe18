package paymentdto

type VerifyPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
}
