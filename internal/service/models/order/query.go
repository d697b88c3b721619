package order

import "github.com/avetra-labs/oms/internal/service/models/orderstatus"

// QueryOrdersModel represents filter parameters for querying orders
type QueryOrdersModel struct {
	Ids         []int64              `json:"ids,omitempty"`
	CustomerIds []int64              `json:"customerIds,omitempty"`
	Statuses    []orderstatus.Status `json:"statuses,omitempty"`
	Limit       int                  `json:"limit,omitempty"`
	Offset      int                  `json:"offset,omitempty"`
}
