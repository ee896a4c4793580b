package tests

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"campus_mess_tests/utils"

	"github.com/stretchr/testify/assert"
)

// waitForHealth chờ server sẵn sàng trước khi chạy test, fail nếu quá số lần thử.
func waitForHealth(baseURL string, attempts int, delay time.Duration, t *testing.T) {
	healthURL := baseURL + "/health"
	for i := 0; i < attempts; i++ {
		resp, err := http.Get(healthURL)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(delay)
	}
	t.Fatalf("Server không sẵn sàng sau %d lần thử tại %s", attempts, healthURL)
}

// TestMessModule kiểm tra các API chính của backend suất ăn.
// Cần server thật đang chạy: đặt MESS_API_URL (vd http://localhost:8080) và
// MESS_API_TOKEN (session token hợp lệ) để chạy, không có thì test được skip.
// Đặt thêm MESS_PAYMENT_SECRET (trùng với PAYMENT_SECRET của server) để chạy
// nhóm test vòng đời phiếu ăn: chốt đơn, duyệt phiếu, duyệt song song.
func TestMessModule(t *testing.T) {
	serverURL := os.Getenv("MESS_API_URL")
	if serverURL == "" {
		t.Skip("Skipping: MESS_API_URL chưa được đặt (cần server thật đang chạy)")
	}
	token := os.Getenv("MESS_API_TOKEN")
	if token == "" {
		t.Skip("Skipping: MESS_API_TOKEN chưa được đặt (cần session token hợp lệ)")
	}

	waitForHealth(serverURL, 10, 1*time.Second, t)

	baseURL := serverURL + "/api/v1"
	client := utils.NewHTTPClient(baseURL, 10)
	client.SetToken(token)

	// ============================================
	// TEST USER (buyer)
	// ============================================
	t.Run("User Operations", func(t *testing.T) {
		var secret string

		t.Run("GET /user/data - Lấy hoặc tạo hồ sơ người mua", func(t *testing.T) {
			resp, body, err := client.GET("/user/data")
			if err != nil {
				t.Fatalf("Lỗi khi gọi /user/data: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

			var result map[string]interface{}
			assert.NoError(t, json.Unmarshal(body, &result), "Phải parse được JSON response")
			assert.Equal(t, "success", result["status"], "Status phải là success")

			data, ok := result["data"].(map[string]interface{})
			if assert.True(t, ok, "data phải là object") {
				if s, ok := data["secret"].(string); ok {
					secret = s
					assert.Len(t, s, 4, "Secret phải dài 4 ký tự")
				}
			}
		})

		t.Run("GET /user/reset-secret - Đổi mã bí mật", func(t *testing.T) {
			resp, body, err := client.GET("/user/reset-secret")
			if err != nil {
				t.Fatalf("Lỗi khi gọi /user/reset-secret: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

			var result map[string]interface{}
			assert.NoError(t, json.Unmarshal(body, &result))
			data, ok := result["data"].(map[string]interface{})
			if assert.True(t, ok) {
				newSecret, _ := data["secret"].(string)
				assert.Len(t, newSecret, 4, "Secret mới phải dài 4 ký tự")
				if secret != "" {
					// Xác suất trùng 1/62^4, coi như không xảy ra
					assert.NotEqual(t, secret, newSecret, "Secret mới phải khác secret cũ")
				}
			}
		})

		t.Run("GET /user/bought-next-week", func(t *testing.T) {
			resp, body, err := client.GET("/user/bought-next-week")
			if err != nil {
				t.Fatalf("Lỗi khi gọi /user/bought-next-week: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		})

		t.Run("POST /user/check-coupon - Secret sai phải trả valid:false", func(t *testing.T) {
			// Route công khai, không cần token
			public := utils.NewHTTPClient(baseURL, 10)
			payload := map[string]interface{}{
				"email":    "khongtontai@example.edu.vn",
				"secret":   "xxxx",
				"day":      "monday",
				"mealType": "breakfast",
			}
			resp, body, err := public.POST("/user/check-coupon", payload)
			if err != nil {
				t.Fatalf("Lỗi khi gọi /user/check-coupon: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

			var result map[string]interface{}
			assert.NoError(t, json.Unmarshal(body, &result))
			data, ok := result["data"].(map[string]interface{})
			if assert.True(t, ok) {
				assert.Equal(t, false, data["valid"], "Phiếu không tồn tại phải trả valid:false")
			}
		})
	})

	// ============================================
	// TEST COUPON LIFECYCLE (cần secret thanh toán)
	// ============================================
	t.Run("Coupon Lifecycle", func(t *testing.T) {
		paymentSecret := os.Getenv("MESS_PAYMENT_SECRET")
		if paymentSecret == "" {
			t.Skip("Skipping: MESS_PAYMENT_SECRET chưa được đặt (cần secret thanh toán của server để chốt đơn)")
		}

		// signPayment tính chữ ký cổng thanh toán giống phía server
		signPayment := func(orderID, paymentID string) string {
			mac := hmac.New(sha256.New, []byte(paymentSecret))
			mac.Write([]byte(orderID + "|" + paymentID))
			return hex.EncodeToString(mac.Sum(nil))
		}

		// settleOrder đặt mua rồi chốt đơn với chữ ký hợp lệ
		settleOrder := func(t *testing.T, selected map[string]map[string]bool) {
			t.Helper()
			resp, body, err := client.POST("/user/create-order", map[string]interface{}{"selected": selected})
			if err != nil {
				t.Fatalf("Lỗi khi gọi /user/create-order: %v", err)
			}
			assert.Equal(t, http.StatusCreated, resp.StatusCode, "body: %s", string(body))

			var created map[string]interface{}
			assert.NoError(t, json.Unmarshal(body, &created))
			data, _ := created["data"].(map[string]interface{})
			orderID, _ := data["orderId"].(string)
			if orderID == "" {
				t.Fatalf("create-order không trả về orderId, body: %s", string(body))
			}

			paymentID := fmt.Sprintf("pay_%d", time.Now().UnixNano())
			resp, body, err = client.POST("/user/check-order", map[string]interface{}{
				"orderId":   orderID,
				"paymentId": paymentID,
				"signature": signPayment(orderID, paymentID),
			})
			if err != nil {
				t.Fatalf("Lỗi khi gọi /user/check-order: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

			var settled map[string]interface{}
			assert.NoError(t, json.Unmarshal(body, &settled))
			sdata, _ := settled["data"].(map[string]interface{})
			assert.Equal(t, true, sdata["settled"], "Chữ ký hợp lệ phải chốt được đơn")
		}

		// buyerState đọc hồ sơ hiện tại của người mua
		buyerState := func(t *testing.T) map[string]interface{} {
			t.Helper()
			resp, body, err := client.GET("/user/data")
			if err != nil {
				t.Fatalf("Lỗi khi gọi /user/data: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

			var result map[string]interface{}
			assert.NoError(t, json.Unmarshal(body, &result))
			data, ok := result["data"].(map[string]interface{})
			if !ok {
				t.Fatalf("data phải là object, body: %s", string(body))
			}
			return data
		}

		// checkCoupon duyệt phiếu qua route công khai, trả về cờ valid
		checkCoupon := func(t *testing.T, email, secret, day, mealType string) bool {
			t.Helper()
			public := utils.NewHTTPClient(baseURL, 10)
			resp, body, err := public.POST("/user/check-coupon", map[string]interface{}{
				"email":    email,
				"secret":   secret,
				"day":      day,
				"mealType": mealType,
			})
			if err != nil {
				t.Fatalf("Lỗi khi gọi /user/check-coupon: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

			var result map[string]interface{}
			assert.NoError(t, json.Unmarshal(body, &result))
			data, _ := result["data"].(map[string]interface{})
			valid, _ := data["valid"].(bool)
			return valid
		}

		t.Run("Chốt đơn ghi đè tuần hiện tại và bật cờ bought", func(t *testing.T) {
			settleOrder(t, map[string]map[string]bool{"monday": {"lunch": true}})

			data := buyerState(t)
			assert.Equal(t, true, data["bought"], "Sau khi chốt đơn cờ bought phải bật")
			this, _ := data["this"].(map[string]interface{})
			monday, _ := this["monday"].(map[string]interface{})
			assert.Equal(t, true, monday["lunch"], "Suất đã mua phải xuất hiện trong bảng tuần hiện tại")
			assert.Equal(t, false, monday["dinner"], "Suất không chọn phải bị ghi đè về false")
		})

		t.Run("Duyệt phiếu lần đầu true, lần hai false", func(t *testing.T) {
			data := buyerState(t)
			email, _ := data["email"].(string)
			secret, _ := data["secret"].(string)

			assert.True(t, checkCoupon(t, email, secret, "monday", "lunch"), "Phiếu vừa mua phải duyệt được")
			assert.False(t, checkCoupon(t, email, secret, "monday", "lunch"), "Phiếu đã tiêu không được duyệt lần hai")
		})

		t.Run("Hai lần duyệt song song chỉ một lần true", func(t *testing.T) {
			settleOrder(t, map[string]map[string]bool{"tuesday": {"dinner": true}})

			data := buyerState(t)
			email, _ := data["email"].(string)
			secret, _ := data["secret"].(string)

			results := make([]bool, 2)
			var wg sync.WaitGroup
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					// Không dùng helper có t.Fatalf trong goroutine phụ
					c := utils.NewHTTPClient(baseURL, 10)
					_, body, err := c.POST("/user/check-coupon", map[string]interface{}{
						"email":    email,
						"secret":   secret,
						"day":      "tuesday",
						"mealType": "dinner",
					})
					if err != nil {
						return
					}
					var result map[string]interface{}
					if json.Unmarshal(body, &result) != nil {
						return
					}
					if data, ok := result["data"].(map[string]interface{}); ok {
						results[i], _ = data["valid"].(bool)
					}
				}(i)
			}
			wg.Wait()

			validCount := 0
			for _, v := range results {
				if v {
					validCount++
				}
			}
			assert.Equal(t, 1, validCount, "Một phiếu bị duyệt song song chỉ được tiêu đúng một lần")
		})

		t.Run("Hai lần lấy hồ sơ song song trả cùng một secret", func(t *testing.T) {
			secrets := make([]string, 2)
			var wg sync.WaitGroup
			for i := range secrets {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					c := utils.NewHTTPClient(baseURL, 10)
					c.SetToken(token)
					_, body, err := c.GET("/user/data")
					if err != nil {
						return
					}
					var result map[string]interface{}
					if json.Unmarshal(body, &result) != nil {
						return
					}
					if data, ok := result["data"].(map[string]interface{}); ok {
						secrets[i], _ = data["secret"].(string)
					}
				}(i)
			}
			wg.Wait()

			assert.Len(t, secrets[0], 4, "Secret phải dài 4 ký tự")
			assert.Equal(t, secrets[0], secrets[1], "Hai request song song phải thấy cùng một hồ sơ và secret")
		})
	})

	// ============================================
	// TEST MENU
	// ============================================
	t.Run("Menu Operations", func(t *testing.T) {
		t.Run("POST /menu - Ghi thực đơn tuần", func(t *testing.T) {
			payload := map[string]interface{}{
				"entries": []map[string]interface{}{
					{"day": "monday", "breakfast": "Phở bò", "lunch": "Cơm gà", "dinner": "Bún chả"},
					{"day": "tuesday", "breakfast": "Xôi gà", "lunch": "Cơm sườn", "dinner": "Mì xào bò"},
				},
			}
			resp, body, err := client.POST("/menu", payload)
			if err != nil {
				t.Fatalf("Lỗi khi gọi POST /menu: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		})

		t.Run("GET /menu - Đọc thực đơn (công khai)", func(t *testing.T) {
			public := utils.NewHTTPClient(baseURL, 10)
			resp, body, err := public.GET("/menu")
			if err != nil {
				t.Fatalf("Lỗi khi gọi GET /menu: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

			var result map[string]interface{}
			assert.NoError(t, json.Unmarshal(body, &result))
			entries, ok := result["data"].([]interface{})
			if assert.True(t, ok, "data phải là mảng thực đơn") {
				assert.GreaterOrEqual(t, len(entries), 2, "Phải có ít nhất 2 ngày vừa ghi")
				first, _ := entries[0].(map[string]interface{})
				assert.Equal(t, "monday", first["day"], "Thực đơn phải được sắp theo thứ tự tuần")
			}
		})

		t.Run("POST /menu - Day lạ phải bị từ chối", func(t *testing.T) {
			payload := map[string]interface{}{
				"entries": []map[string]interface{}{
					{"day": "someday", "breakfast": "x", "lunch": "y", "dinner": "z"},
				},
			}
			resp, body, err := client.POST("/menu", payload)
			if err != nil {
				t.Fatalf("Lỗi khi gọi POST /menu: %v", err)
			}
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body: %s", string(body))
		})
	})

	// ============================================
	// TEST RATING
	// ============================================
	t.Run("Rating Operations", func(t *testing.T) {
		t.Run("POST /rating - Đánh giá rồi đánh giá lại", func(t *testing.T) {
			payload := map[string]interface{}{
				"day":      "monday",
				"mealType": "breakfast",
				"rating":   3,
			}
			resp, body, err := client.POST("/rating", payload)
			if err != nil {
				t.Fatalf("Lỗi khi gọi POST /rating: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

			// Đánh giá lại: phải thay thế chứ không nhân đôi
			payload["rating"] = 5
			resp, body, err = client.POST("/rating", payload)
			if err != nil {
				t.Fatalf("Lỗi khi đánh giá lại: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

			resp, body, err = client.GET("/rating?day=monday&mealType=breakfast")
			if err != nil {
				t.Fatalf("Lỗi khi gọi GET /rating: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

			var result map[string]interface{}
			assert.NoError(t, json.Unmarshal(body, &result))
			data, ok := result["data"].(map[string]interface{})
			if assert.True(t, ok) {
				assert.Equal(t, float64(5), data["rating"], "Đánh giá lại phải ghi đè số sao cũ")
			}
		})

		t.Run("POST /rating - Số sao ngoài khoảng phải bị từ chối", func(t *testing.T) {
			payload := map[string]interface{}{
				"day":      "monday",
				"mealType": "breakfast",
				"rating":   6,
			}
			resp, body, err := client.POST("/rating", payload)
			if err != nil {
				t.Fatalf("Lỗi khi gọi POST /rating: %v", err)
			}
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body: %s", string(body))
		})
	})

	// ============================================
	// TEST ADMIN (aggregate)
	// ============================================
	t.Run("Admin Operations", func(t *testing.T) {
		t.Run("POST /admin/aggregate-daily", func(t *testing.T) {
			resp, body, err := client.POST("/admin/aggregate-daily", nil)
			if err != nil {
				t.Fatalf("Lỗi khi gọi /admin/aggregate-daily: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		})

		t.Run("POST /admin/aggregate-weekly", func(t *testing.T) {
			resp, body, err := client.POST("/admin/aggregate-weekly", nil)
			if err != nil {
				t.Fatalf("Lỗi khi gọi /admin/aggregate-weekly: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		})

		t.Run("GET /admin/orders - Liệt kê đơn hàng có phân trang", func(t *testing.T) {
			resp, body, err := client.GET("/admin/orders?page=1&limit=5")
			if err != nil {
				t.Fatalf("Lỗi khi gọi /admin/orders: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

			var result map[string]interface{}
			assert.NoError(t, json.Unmarshal(body, &result))
			data, ok := result["data"].(map[string]interface{})
			if assert.True(t, ok, "data phải là object phân trang") {
				assert.Equal(t, float64(1), data["page"], "Trang trả về phải đúng trang yêu cầu")
				assert.Equal(t, float64(5), data["limit"], "Limit trả về phải đúng limit yêu cầu")
				_, hasItems := data["items"]
				assert.True(t, hasItems, "Kết quả phân trang phải có danh sách items")
			}
		})
	})

	fmt.Println("Hoàn thành test module mess")
}
