package utility

import (
	"strings"
	"testing"
)

func TestGenerateSecret_LengthAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := GenerateSecret()
		if len(s) != SecretLength {
			t.Fatalf("mã bí mật phải dài %d ký tự, nhận được %q", SecretLength, s)
		}
		for _, ch := range s {
			if !strings.ContainsRune(secretAlphabet, ch) {
				t.Fatalf("mã bí mật chứa ký tự ngoài bảng cho phép: %q trong %q", ch, s)
			}
		}
		// Số 0 không nằm trong bảng ký tự (tránh nhầm với chữ O)
		if strings.ContainsRune(s, '0') {
			t.Fatalf("mã bí mật không được chứa số 0: %q", s)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("sinhvien@example.edu.vn"); err != nil {
		t.Errorf("email hợp lệ bị từ chối: %v", err)
	}
	for _, bad := range []string{"", "khong-phai-email", "a@", "@b.com", "a b@c.com"} {
		if err := ValidateEmail(bad); err == nil {
			t.Errorf("email không hợp lệ %q phải bị từ chối", bad)
		}
	}
}
