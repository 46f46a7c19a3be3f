package handler

import (
	"errors"
	"net/http"

	"github.com/futureday25/viberlab/internal/domain"
)

// completionStatus maps a failed completion to an HTTP status and a single
// human-readable message. Upstream rejections keep their original status so
// the failure class survives the proxy hop.
func completionStatus(err error) (int, string) {
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrConfigIncomplete):
		return http.StatusBadRequest, "completion configuration is incomplete, log in first"
	case errors.Is(err, domain.ErrTruncatedResponse):
		return http.StatusBadGateway, "the reply hit the output limit, try a shorter ask"
	case errors.Is(err, domain.ErrEmptyResponse):
		return http.StatusBadGateway, "the model returned no usable content"
	case errors.Is(err, domain.ErrActiveRequest):
		return http.StatusConflict, "wait for the previous request to finish"
	case errors.As(err, &upstream):
		return upstream.Status, upstream.Error()
	default:
		return http.StatusBadGateway, "the model request failed"
	}
}
