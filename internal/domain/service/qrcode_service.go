package service

// QRCodeService renders order references as QR codes for pickup desks.
type QRCodeService interface {
	// GenerateOrderQR returns a PNG QR image encoding the order reference.
	GenerateOrderQR(orderRef string) ([]byte, error)

	// ParseOrderQR decodes QR payload data back to the order reference.
	ParseOrderQR(qrData string) (string, error)
}
