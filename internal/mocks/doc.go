package mocks

//go:generate mockgen -destination signing.go -package mocks sigsum.org/receipt-go/pkg/signing Service
