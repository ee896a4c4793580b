// Package forecastsvc - Client proxy tới dịch vụ dự báo bên ngoài (Python).
// Dịch vụ này tự đọc dữ liệu tổng hợp từ MongoDB; backend chỉ chuyển tiếp JSON.
package forecastsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"campus_mess/internal/common"
	"campus_mess/internal/global"
	"campus_mess/internal/logger"
)

// ForecastClient gọi sang dịch vụ dự báo qua HTTP.
type ForecastClient struct {
	baseURL string
	client  *http.Client
}

// NewForecastClient tạo client với base URL từ cấu hình.
func NewForecastClient() *ForecastClient {
	return &ForecastClient{
		baseURL: global.ServerConfig.ForecastURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// WeeklyForecast lấy dự báo số suất ăn cho các tuần tới.
func (f *ForecastClient) WeeklyForecast(ctx context.Context, weeks int) (json.RawMessage, error) {
	if weeks <= 0 {
		weeks = 1
	}
	endpoint := f.baseURL + "/forecast/weekly?weeks=" + url.QueryEscape(strconv.Itoa(weeks))
	return f.get(ctx, endpoint)
}

// IngredientForecast lấy dự báo nhu cầu nguyên liệu.
func (f *ForecastClient) IngredientForecast(ctx context.Context) (json.RawMessage, error) {
	return f.get(ctx, f.baseURL+"/forecast/ingredients")
}

// get gọi GET và chuyển tiếp JSON thô. Lỗi upstream trả về ErrUpstream với
// chi tiết bị ẩn khỏi client.
func (f *ForecastClient) get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, common.ErrUpstream
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.GetErrorLogger().WithError(err).WithField("url", endpoint).Error("Không gọi được dịch vụ dự báo")
		return nil, common.ErrUpstreamTimeout
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.ErrUpstream
	}

	if resp.StatusCode != http.StatusOK {
		logger.GetErrorLogger().WithFields(map[string]interface{}{
			"url":        endpoint,
			"statusCode": resp.StatusCode,
		}).Error(fmt.Sprintf("Dịch vụ dự báo trả về lỗi: %s", string(body)))
		return nil, common.ErrUpstream
	}

	// Chuyển tiếp nguyên văn, không decode lại cấu trúc
	return json.RawMessage(body), nil
}
