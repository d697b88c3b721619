package processorders

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avetra-labs/oms/internal/service/models/customer"
	"github.com/avetra-labs/oms/internal/service/models/order"
	"github.com/avetra-labs/oms/internal/service/services/ordersvc"
)

// service is an interface for the service layer.
type service interface {
	ProcessCustomerOrders(ctx context.Context, customerID int64) ([]order.Order, error)
}

// ProcessOrders runs the processing transaction for the customer's pending
// orders and returns the processed orders.
func ProcessOrders(w http.ResponseWriter, r *http.Request, service service) {
	customerID, err := strconv.ParseInt(chi.URLParam(r, "customerId"), 10, 64)
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		slog.Error("Error parsing customer id", "error", err)

		return
	}

	orders, err := service.ProcessCustomerOrders(r.Context(), customerID)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, ordersvc.ErrInvalidCustomerID):
			status = http.StatusBadRequest
		case errors.Is(err, customer.ErrNotFound):
			status = http.StatusNotFound
		}

		http.Error(w, err.Error(), status)
		slog.Error("Error processing customer orders", "customer_id", customerID, "error", err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(orders); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response", "error", err)
	}
}
