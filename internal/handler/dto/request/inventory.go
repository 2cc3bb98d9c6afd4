package request

// ResizeInventoryRequest asks for an exact slot count. Policy bounds are
// checked by the handler against the loaded inventory policy.
type ResizeInventoryRequest struct {
	Count *int `json:"count" binding:"required"`
}
