package get_aesthetician_bookings

import (
	"strconv"

	"github.com/m04kA/glowbook-gateway/internal/domain"
	"github.com/m04kA/glowbook-gateway/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из URL и query параметров
func ToServiceRequest(token string, role domain.Role, aestheticianIDStr, dateFrom, dateTo string) (*models.ListForAestheticianRequest, error) {
	aestheticianID, err := strconv.ParseInt(aestheticianIDStr, 10, 64)
	if err != nil {
		return nil, err
	}

	req := &models.ListForAestheticianRequest{
		Token:          token,
		Role:           role,
		AestheticianID: aestheticianID,
	}
	if dateFrom != "" {
		req.DateFrom = &dateFrom
	}
	if dateTo != "" {
		req.DateTo = &dateTo
	}
	return req, nil
}
