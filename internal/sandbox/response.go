package sandbox

import (
	"encoding/json"
	"net/http"

	"github.com/mihalio25/yandex-market-partner-api/internal/market"
	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

type errDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errResp is the vendor error envelope, the shape clients parse into
// APIError.
type errResp struct {
	Status string      `json:"status"`
	Errors []errDetail `json:"errors"`
}

type resultResp struct {
	Status string `json:"status"`
	Result any    `json:"result,omitempty"`
}

func errorCode(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

func writeError(res http.ResponseWriter, statusCode int, err error) {
	res.WriteHeader(statusCode)

	json.NewEncoder(res).Encode(errResp{
		Status: "ERROR",
		Errors: []errDetail{{Code: errorCode(statusCode), Message: err.Error()}},
	})
}

// writeResult wraps a payload in the {"status","result"} envelope the newer
// endpoints answer with.
func writeResult(res http.ResponseWriter, result any) {
	json.NewEncoder(res).Encode(resultResp{Status: "OK", Result: result})
}

type generateReportResult struct {
	ReportID                string `json:"reportId"`
	EstimatedGenerationTime int64  `json:"estimatedGenerationTime,omitempty"`
}

type campaignResp struct {
	Campaign model.Campaign `json:"campaign"`
}

type campaignSettingsResp struct {
	Settings market.CampaignSettings `json:"settings"`
}

type orderResp struct {
	Order model.Order `json:"order"`
}
