// Package ordersvc - Test xác minh chữ ký thanh toán từ cổng.
package ordersvc

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature_Valid(t *testing.T) {
	secret := "test-payment-secret"
	orderID := "order_65a1b2c3d4e5f67890123456"
	paymentID := "pay_001"

	sig := sign(orderID, paymentID, secret)
	if !VerifyPaymentSignature(orderID, paymentID, sig, secret) {
		t.Error("chữ ký hợp lệ phải được chấp nhận")
	}
}

func TestVerifyPaymentSignature_Invalid(t *testing.T) {
	secret := "test-payment-secret"
	orderID := "order_65a1b2c3d4e5f67890123456"
	paymentID := "pay_001"
	sig := sign(orderID, paymentID, secret)

	cases := []struct {
		name                         string
		orderID, paymentID, sigInput string
	}{
		{"chữ ký sai", orderID, paymentID, "deadbeef"},
		{"orderID khác", "order_khac", paymentID, sig},
		{"paymentID khác", orderID, "pay_002", sig},
		{"orderID rỗng", "", paymentID, sig},
		{"paymentID rỗng", orderID, "", sig},
		{"chữ ký rỗng", orderID, paymentID, ""},
	}
	for _, c := range cases {
		if VerifyPaymentSignature(c.orderID, c.paymentID, c.sigInput, secret) {
			t.Errorf("%s: chữ ký phải bị từ chối", c.name)
		}
	}
}

func TestVerifyPaymentSignature_WrongSecret(t *testing.T) {
	sig := sign("order_1", "pay_1", "secret-a")
	if VerifyPaymentSignature("order_1", "pay_1", sig, "secret-b") {
		t.Error("chữ ký ký bằng secret khác phải bị từ chối")
	}
}
