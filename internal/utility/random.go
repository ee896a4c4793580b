package utility

import (
	"math/rand"
)

// secretAlphabet là bảng ký tự dùng để sinh mã bí mật cho người mua
// (chữ thường, chữ hoa và các chữ số 1-9, không có số 0 để tránh nhầm với chữ O)
const secretAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ123456789"

// SecretLength là độ dài mã bí mật in trên phiếu ăn
const SecretLength = 4

// GenerateSecret sinh một mã bí mật ngẫu nhiên gồm SecretLength ký tự.
// Mã này chỉ dùng để đối chiếu tại quầy, không phải mã bảo mật mạnh.
func GenerateSecret() string {
	b := make([]byte, SecretLength)
	for i := range b {
		b[i] = secretAlphabet[rand.Intn(len(secretAlphabet))]
	}
	return string(b)
}
