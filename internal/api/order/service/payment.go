package ordersvc

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifyPaymentSignature kiểm tra chữ ký cổng thanh toán trả về sau khi người mua
// thanh toán: HMAC-SHA256 của chuỗi "<orderID>|<paymentID>" với secret cấu hình,
// so sánh constant-time để tránh timing attack.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
