package list_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/avlebedev/SLB-BookingEngine/internal/service/bookings/models"
)

// ParseQuery собирает фильтр бронирований из query-параметров:
// ?staffId=&customerId=&from=&to=&status=
func ParseQuery(businessID int64, query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		BusinessID: businessID,
	}

	if raw := query.Get("staffId"); raw != "" {
		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.StaffID = &staffID
	}

	if raw := query.Get("customerId"); raw != "" {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CustomerID = &customerID
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	return req, nil
}
