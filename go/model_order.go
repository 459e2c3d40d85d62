package ordersserver

// Order is a single order as served on the wire.
type Order struct {
	Id int64 `json:"id"`

	// Priority class: H, M or L.
	Priority string `json:"priority"`

	// ISO-8601 calendar date, YYYY-MM-DD.
	Date string `json:"date"`

	Quantity int `json:"quantity"`
}

// PageMeta describes the page a listing was cut from.
type PageMeta struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// OrdersResponse is the envelope of every order listing.
type OrdersResponse struct {
	Size    int      `json:"size"`
	Data    []Order  `json:"data"`
	HasMore bool     `json:"has_more"`
	Error   bool     `json:"error"`
	Meta    PageMeta `json:"meta"`
}

// OrderResponse is the envelope of a single order lookup.
type OrderResponse struct {
	Size  int     `json:"size"`
	Data  []Order `json:"data"`
	Error bool    `json:"error"`
}

// PrioritizedOrdersResponse lists a page of orders in priority order.
type PrioritizedOrdersResponse struct {
	Size     int      `json:"size"`
	Data     []Order  `json:"data"`
	Ids      []int64  `json:"ids"`
	Rejected []int64  `json:"rejected"`
	HasMore  bool     `json:"has_more"`
	Error    bool     `json:"error"`
	Meta     PageMeta `json:"meta"`
}
