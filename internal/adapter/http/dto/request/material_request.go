package request

// MaterialRequest is the payload for adding a catalog material. UnitPrice in
// centavos.
type MaterialRequest struct {
	Name      string `json:"name" binding:"required"`
	UnitPrice int64  `json:"unit_price"`
}

// MaterialUpdateRequest is a partial update; absent fields keep their stored
// value.
type MaterialUpdateRequest struct {
	Name      *string `json:"name"`
	UnitPrice *int64  `json:"unit_price"`
}
